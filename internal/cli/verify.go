package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TessVincent/prismhealth/internal/client"
	"github.com/TessVincent/prismhealth/models"
)

var indicatorNames = map[string]models.Indicator{
	"systolic":   models.IndicatorSystolicBP,
	"diastolic":  models.IndicatorDiastolicBP,
	"glucose":    models.IndicatorBloodGlucose,
	"heart-rate": models.IndicatorHeartRate,
	"weight":     models.IndicatorWeight,
}

func newVerifyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Prove facts about encrypted values without revealing them",
	}
	cmd.AddCommand(newVerifyRangeCommand(a), newVerifyThresholdCommand(a))
	return cmd
}

func newVerifyRangeCommand(a *app) *cobra.Command {
	var (
		recordID  uint64
		indicator string
		lower     uint16
		upper     uint16
		proofType string
	)
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Check min <= indicator <= max for a health record",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
			ind, err := parseIndicator(indicator)
			if err != nil {
				return err
			}
			v, err := c.VerifyInRange(ctx, recordID, ind, lower, upper)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields(fmt.Sprintf("%s in [%d, %d]", ind, lower, upper),
				f("Record", recordID),
				f("Result", renderVerdict(v.Passed)),
				f("Handle", v.Handle.Hex()),
				f("Transaction", v.TxHash.Hex()),
			))
			return issueProof(ctx, cmd, c, proofType, v)
		}),
	}

	flags := cmd.Flags()
	flags.Uint64Var(&recordID, "record", 0, "health record id")
	flags.StringVar(&indicator, "indicator", "", "systolic, diastolic, glucose, heart-rate, weight or 0-4")
	flags.Uint16Var(&lower, "min", 0, "lower bound, inclusive")
	flags.Uint16Var(&upper, "max", 0, "upper bound, inclusive")
	flags.StringVar(&proofType, "proof", "", "also record a verification proof of this type, e.g. "+models.VerificationRange)
	for _, name := range []string{"record", "indicator", "min", "max"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newVerifyThresholdCommand(a *app) *cobra.Command {
	var (
		minScore  uint16
		proofType string
	)
	cmd := &cobra.Command{
		Use:   "threshold",
		Short: "Check that the stored health score is at least --min",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
			v, err := c.VerifyScoreThreshold(ctx, minScore)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields(fmt.Sprintf("Health score >= %d", minScore),
				f("Result", renderVerdict(v.Passed)),
				f("Handle", v.Handle.Hex()),
				f("Transaction", v.TxHash.Hex()),
			))
			return issueProof(ctx, cmd, c, proofType, v)
		}),
	}

	flags := cmd.Flags()
	flags.Uint16Var(&minScore, "min", 0, "minimum total score")
	flags.StringVar(&proofType, "proof", "", "also record a verification proof of this type, e.g. "+models.VerificationInsurance)
	_ = cmd.MarkFlagRequired("min")
	return cmd
}

func issueProof(ctx context.Context, cmd *cobra.Command, c *client.Client, proofType string, v client.Verification) error {
	if proofType == "" {
		return nil
	}
	sub, err := c.GenerateProof(ctx, proofType, v.Handle)
	if err != nil {
		return fmt.Errorf("record proof: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderFields("Proof recorded",
		f("ID", sub.Result),
		f("Type", proofType),
		f("Transaction", sub.TxHash.Hex()),
	))
	return nil
}

func parseIndicator(s string) (models.Indicator, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if ind, ok := indicatorNames[s]; ok {
		return ind, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || !models.Indicator(n).Valid() {
		return 0, models.Errorf(models.ErrUnknownIndicator, "%q", s)
	}
	return models.Indicator(n), nil
}
