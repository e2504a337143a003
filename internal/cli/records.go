package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/TessVincent/prismhealth/internal/client"
	"github.com/TessVincent/prismhealth/models"
)

const dateLayout = "2006-01-02"

func newRecordCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "record",
		Aliases: []string{"records"},
		Short:   "Add, read and delete encrypted records",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Encrypt and append a record",
	}
	add.AddCommand(newAddHealthCommand(a), newAddMedicationCommand(a), newAddExerciseCommand(a))

	cmd.AddCommand(
		add,
		&cobra.Command{
			Use:   "get <health|medication|exercise> <id>",
			Short: "Show a record as stored: ciphertext handles only",
			Args:  cobra.ExactArgs(2),
			RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
				kind, id, err := parseRecordRef(args)
				if err != nil {
					return err
				}
				out, err := getRecord(ctx, c, kind, id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "decrypt <health|medication|exercise> <id>",
			Short: "Decrypt a record locally under a one-shot grant",
			Args:  cobra.ExactArgs(2),
			RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
				kind, id, err := parseRecordRef(args)
				if err != nil {
					return err
				}
				out, err := decryptRecord(ctx, c, kind, id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a health record",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err = c.DeleteHealthRecord(ctx, id); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderFields("Health record deleted", f("ID", id)))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "count <health|medication|exercise>",
			Short: "Count records of a kind, deleted ones included",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
				kind, err := parseKind(args[0])
				if err != nil {
					return err
				}
				n, err := c.CountRecords(ctx, kind)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderFields("Records", f("Kind", kind), f("Count", n)))
				return nil
			}),
		},
	)
	return cmd
}

func newAddHealthCommand(a *app) *cobra.Command {
	var v models.HealthValues
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Append a health record",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
			id, err := c.AddHealthRecord(ctx, v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields("Health record added", f("ID", id)))
			return nil
		}),
	}

	flags := cmd.Flags()
	flags.Uint16Var(&v.SystolicBP, "systolic", 0, "systolic blood pressure, mmHg")
	flags.Uint16Var(&v.DiastolicBP, "diastolic", 0, "diastolic blood pressure, mmHg")
	flags.Uint16Var(&v.BloodGlucose, "glucose", 0, "blood glucose, mg/dL")
	flags.Uint16Var(&v.HeartRate, "heart-rate", 0, "heart rate, bpm")
	flags.Uint16Var(&v.Weight, "weight", 0, "weight, kg")
	for _, name := range []string{"systolic", "diastolic", "glucose", "heart-rate", "weight"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newAddMedicationCommand(a *app) *cobra.Command {
	var (
		v          models.MedicationValues
		start, end string
	)
	cmd := &cobra.Command{
		Use:   "medication",
		Short: "Append a medication record",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
			var err error
			if v.StartDate, err = parseDate(start); err != nil {
				return err
			}
			if v.EndDate, err = parseDate(end); err != nil {
				return err
			}
			id, err := c.AddMedicationRecord(ctx, v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields("Medication record added", f("ID", id)))
			return nil
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&v.Name, "name", "", "medication name (stored in plaintext)")
	flags.Uint16Var(&v.Dosage, "dosage", 0, "dosage, mg")
	flags.Uint8Var(&v.Frequency, "frequency", 0, "doses per day")
	flags.StringVar(&start, "start", "", "start date, "+dateLayout)
	flags.StringVar(&end, "end", "", "end date, "+dateLayout)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("dosage")
	_ = cmd.MarkFlagRequired("frequency")
	return cmd
}

func newAddExerciseCommand(a *app) *cobra.Command {
	var v models.ExerciseValues
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Append an exercise record",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
			id, err := c.AddExerciseRecord(ctx, v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields("Exercise record added", f("ID", id)))
			return nil
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&v.ExerciseType, "type", "", "exercise type (stored in plaintext)")
	flags.Uint16Var(&v.Duration, "duration", 0, "duration, minutes")
	flags.Uint16Var(&v.Calories, "calories", 0, "calories burned")
	for _, name := range []string{"type", "duration", "calories"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func getRecord(ctx context.Context, c *client.Client, kind models.RecordKind, id uint64) (string, error) {
	switch kind {
	case models.KindHealth:
		r, err := c.GetHealthRecord(ctx, id)
		if err != nil {
			return "", err
		}
		return renderFields(fmt.Sprintf("Health record %d", r.ID),
			f("Recorded", renderTime(r.Timestamp)),
			f(models.IndicatorSystolicBP.String(), r.SystolicBP.Hex()),
			f(models.IndicatorDiastolicBP.String(), r.DiastolicBP.Hex()),
			f(models.IndicatorBloodGlucose.String(), r.BloodGlucose.Hex()),
			f(models.IndicatorHeartRate.String(), r.HeartRate.Hex()),
			f(models.IndicatorWeight.String(), r.Weight.Hex()),
		), nil
	case models.KindMedication:
		r, err := c.GetMedicationRecord(ctx, id)
		if err != nil {
			return "", err
		}
		return renderFields(fmt.Sprintf("Medication record %d", r.ID),
			f("Recorded", renderTime(r.Timestamp)),
			f("Name", r.Name),
			f("Dosage", r.Dosage.Hex()),
			f("Frequency", r.Frequency.Hex()),
			f("Start", renderTime(r.StartDate)),
			f("End", renderTime(r.EndDate)),
		), nil
	default:
		r, err := c.GetExerciseRecord(ctx, id)
		if err != nil {
			return "", err
		}
		return renderFields(fmt.Sprintf("Exercise record %d", r.ID),
			f("Recorded", renderTime(r.Timestamp)),
			f("Type", r.ExerciseType),
			f("Duration", r.Duration.Hex()),
			f("Calories", r.Calories.Hex()),
		), nil
	}
}

func decryptRecord(ctx context.Context, c *client.Client, kind models.RecordKind, id uint64) (string, error) {
	switch kind {
	case models.KindHealth:
		v, err := c.DecryptHealthRecord(ctx, id)
		if err != nil {
			return "", err
		}
		return renderFields(fmt.Sprintf("Health record %d", id),
			f(models.IndicatorSystolicBP.String(), fmt.Sprintf("%d mmHg", v.SystolicBP)),
			f(models.IndicatorDiastolicBP.String(), fmt.Sprintf("%d mmHg", v.DiastolicBP)),
			f(models.IndicatorBloodGlucose.String(), fmt.Sprintf("%d mg/dL", v.BloodGlucose)),
			f(models.IndicatorHeartRate.String(), fmt.Sprintf("%d bpm", v.HeartRate)),
			f(models.IndicatorWeight.String(), fmt.Sprintf("%d kg", v.Weight)),
		), nil
	case models.KindMedication:
		v, err := c.DecryptMedicationRecord(ctx, id)
		if err != nil {
			return "", err
		}
		return renderFields(fmt.Sprintf("Medication record %d", id),
			f("Name", v.Name),
			f("Dosage", fmt.Sprintf("%d mg", v.Dosage)),
			f("Frequency", fmt.Sprintf("%d per day", v.Frequency)),
			f("Start", renderTime(v.StartDate)),
			f("End", renderTime(v.EndDate)),
		), nil
	default:
		v, err := c.DecryptExerciseRecord(ctx, id)
		if err != nil {
			return "", err
		}
		return renderFields(fmt.Sprintf("Exercise record %d", id),
			f("Type", v.ExerciseType),
			f("Duration", fmt.Sprintf("%d min", v.Duration)),
			f("Calories", v.Calories),
		), nil
	}
}

func parseKind(s string) (models.RecordKind, error) {
	kind := models.RecordKind(s)
	if !kind.Valid() {
		return "", models.Errorf(models.ErrUnknownRecordKind, "%q", s)
	}
	return kind, nil
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func parseRecordRef(args []string) (models.RecordKind, uint64, error) {
	kind, err := parseKind(args[0])
	if err != nil {
		return "", 0, err
	}
	id, err := parseID(args[1])
	return kind, id, err
}

// parseDate reads a calendar date as midnight UTC. Empty is zero.
func parseDate(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, want %s: %w", s, dateLayout, err)
	}
	return t.Unix(), nil
}
