// Package ledger describes the on-ledger surface of the health ledger
// contract: its events, how they are encoded into logs, and how
// transaction hashes are derived.
package ledger

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Event names.
const (
	EventHealthRecordAdded          = "HealthRecordAdded"
	EventMedicationRecordAdded      = "MedicationRecordAdded"
	EventExerciseRecordAdded        = "ExerciseRecordAdded"
	EventHealthRecordDeleted        = "HealthRecordDeleted"
	EventHealthScoreCalculated      = "HealthScoreCalculated"
	EventVerificationProofGenerated = "VerificationProofGenerated"
	EventVerificationResult         = "VerificationResult"
	EventScoreThresholdVerified     = "ScoreThresholdVerified"
)

const healthLedgerABI = `[
 {"type":"event","name":"HealthRecordAdded","inputs":[
  {"name":"user","type":"address","indexed":true},
  {"name":"recordId","type":"uint256","indexed":true},
  {"name":"timestamp","type":"uint256","indexed":false}]},
 {"type":"event","name":"MedicationRecordAdded","inputs":[
  {"name":"user","type":"address","indexed":true},
  {"name":"recordId","type":"uint256","indexed":true},
  {"name":"timestamp","type":"uint256","indexed":false}]},
 {"type":"event","name":"ExerciseRecordAdded","inputs":[
  {"name":"user","type":"address","indexed":true},
  {"name":"recordId","type":"uint256","indexed":true},
  {"name":"timestamp","type":"uint256","indexed":false}]},
 {"type":"event","name":"HealthRecordDeleted","inputs":[
  {"name":"user","type":"address","indexed":true},
  {"name":"recordId","type":"uint256","indexed":true}]},
 {"type":"event","name":"HealthScoreCalculated","inputs":[
  {"name":"user","type":"address","indexed":true},
  {"name":"timestamp","type":"uint256","indexed":false}]},
 {"type":"event","name":"VerificationProofGenerated","inputs":[
  {"name":"user","type":"address","indexed":true},
  {"name":"proofId","type":"uint256","indexed":true},
  {"name":"verificationType","type":"string","indexed":false}]},
 {"type":"event","name":"VerificationResult","inputs":[
  {"name":"user","type":"address","indexed":true},
  {"name":"recordId","type":"uint256","indexed":true},
  {"name":"indicatorType","type":"uint8","indexed":false},
  {"name":"resultHandle","type":"bytes32","indexed":false}]},
 {"type":"event","name":"ScoreThresholdVerified","inputs":[
  {"name":"user","type":"address","indexed":true},
  {"name":"resultHandle","type":"bytes32","indexed":false}]}
]`

// ABI is the parsed event ABI of the health ledger contract.
var ABI = mustParseABI()

func mustParseABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(healthLedgerABI))
	if err != nil {
		panic("ledger: invalid ABI: " + err.Error())
	}
	return parsed
}
