package service

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/models"
)

// Fixed sub-scores for dimensions without a record.
const (
	defaultExerciseScore   = 50
	defaultMedicationScore = 80
)

// tier maps a value to the points of the first band it falls below. Bands
// are ordered by ascending bound; values at or above every bound get rest.
type tier struct {
	below  uint64
	points uint64
}

// scorer evaluates the health score rules over ciphertexts. Every comparison
// and choice is an engine operation; no intermediate value is decrypted.
type scorer struct {
	p *fhe.Program
}

// points picks the score of the band v falls into.
func (s scorer) points(v common.Hash, bands []tier, rest uint64) common.Hash {
	out := s.p.Const(rest, fhe.Uint8)
	for i := len(bands) - 1; i >= 0; i-- {
		out = s.p.Select(s.p.Lt(v, bands[i].below), s.p.Const(bands[i].points, fhe.Uint8), out)
	}
	return out
}

// atLeast picks the score of the highest threshold v reaches.
func (s scorer) atLeast(v common.Hash, thresholds []tier, rest uint64) common.Hash {
	out := s.p.Const(rest, fhe.Uint8)
	for i := len(thresholds) - 1; i >= 0; i-- {
		reached := s.p.Eval(fhe.OpGe, fhe.H(v), fhe.S(thresholds[i].below))
		out = s.p.Select(reached, s.p.Const(thresholds[i].points, fhe.Uint8), out)
	}
	return out
}

func (s scorer) cardiovascular(rec models.HealthRecord) common.Hash {
	systolic := s.points(rec.SystolicBP, []tier{{120, 50}, {130, 40}, {140, 25}}, 10)
	diastolic := s.points(rec.DiastolicBP, []tier{{80, 50}, {90, 30}}, 10)
	return s.p.Add(systolic, diastolic)
}

func (s scorer) metabolic(rec models.HealthRecord) common.Hash {
	glucose := s.points(rec.BloodGlucose, []tier{{70, 20}, {100, 60}, {126, 35}}, 10)
	inRange := s.p.Eval(fhe.OpAnd,
		fhe.H(s.p.Eval(fhe.OpGe, fhe.H(rec.HeartRate), fhe.S(60))),
		fhe.H(s.p.Eval(fhe.OpLe, fhe.H(rec.HeartRate), fhe.S(100))),
	)
	heart := s.p.Select(inRange, s.p.Const(40, fhe.Uint8), s.p.Const(15, fhe.Uint8))
	return s.p.Add(glucose, heart)
}

func (s scorer) exercise(rec *models.ExerciseRecord) common.Hash {
	if rec == nil {
		return s.p.Const(defaultExerciseScore, fhe.Uint8)
	}
	duration := s.atLeast(rec.Duration, []tier{{30, 60}, {15, 35}}, 10)
	calories := s.atLeast(rec.Calories, []tier{{200, 40}, {100, 25}}, 10)
	return s.p.Add(duration, calories)
}

func (s scorer) medication(rec *models.MedicationRecord) common.Hash {
	if rec == nil {
		return s.p.Const(defaultMedicationScore, fhe.Uint8)
	}
	frequency := s.points(rec.Frequency, []tier{{3, 60}, {5, 40}}, 20)
	dosage := s.p.Select(
		s.p.Eval(fhe.OpLe, fhe.H(rec.Dosage), fhe.S(500)),
		s.p.Const(40, fhe.Uint8),
		s.p.Const(20, fhe.Uint8),
	)
	return s.p.Add(frequency, dosage)
}

// total is (30c + 25m + 25e + 20med + 50) / 100 on 16-bit ciphertexts; the
// +50 rounds half up.
func (s scorer) total(cardio, metabolic, exercise, medication common.Hash) common.Hash {
	weighted := func(h common.Hash, w uint64) common.Hash {
		return s.p.Eval(fhe.OpMul, fhe.H(s.p.Cast(h, fhe.Uint16)), fhe.S(w))
	}
	sum := s.p.Add(weighted(cardio, 30), weighted(metabolic, 25))
	sum = s.p.Add(sum, weighted(exercise, 25))
	sum = s.p.Add(sum, weighted(medication, 20))
	sum = s.p.Eval(fhe.OpAdd, fhe.H(sum), fhe.S(50))
	return s.p.Eval(fhe.OpDiv, fhe.H(sum), fhe.S(100))
}

// risk is 1 + [t<80] + [t<60] + [t<40] + [t<20].
func (s scorer) risk(total common.Hash) common.Hash {
	level := s.p.Const(1, fhe.Uint8)
	for _, bound := range []uint64{80, 60, 40, 20} {
		level = s.p.Add(level, s.p.Cast(s.p.Lt(total, bound), fhe.Uint8))
	}
	return level
}

// computeHealthScore evaluates the score of the latest records. exercise and
// medication may be nil.
func computeHealthScore(p *fhe.Program, health models.HealthRecord, exercise *models.ExerciseRecord, medication *models.MedicationRecord) (models.HealthScore, error) {
	s := scorer{p: p}

	score := models.HealthScore{
		Cardiovascular: s.cardiovascular(health),
		Metabolic:      s.metabolic(health),
		Exercise:       s.exercise(exercise),
		Medication:     s.medication(medication),
	}
	score.TotalScore = s.total(score.Cardiovascular, score.Metabolic, score.Exercise, score.Medication)
	score.RiskLevel = s.risk(score.TotalScore)

	if err := p.Err(); err != nil {
		return models.HealthScore{}, err
	}
	return score, nil
}
