package plate

import "fmt"

// InvalidReplicatesError reports a replicate count below one or too large
// for a single 24-column row.
type InvalidReplicatesError struct {
	Replicates int
}

func (e InvalidReplicatesError) Error() string {
	if e.Replicates < 1 {
		return "replicates must be >= 1"
	}
	return fmt.Sprintf("replicates (%d) too large for %d columns", e.Replicates, ColumnCount)
}

// EmptySampleListError reports that pasted-sample mode yielded no samples.
type EmptySampleListError struct{}

func (EmptySampleListError) Error() string {
	return "no samples parsed from pasted list"
}

// NoTargetsError reports an empty target list.
type NoTargetsError struct{}

func (NoTargetsError) Error() string {
	return "at least one target is required"
}

// DuplicateTargetError reports two targets sharing a name.
type DuplicateTargetError struct {
	Name string
}

func (e DuplicateTargetError) Error() string {
	return fmt.Sprintf("duplicate target: %s", e.Name)
}

// UnknownChemistryError reports a target referencing a chemistry key that
// is not in the catalog.
type UnknownChemistryError struct {
	Target    string
	Chemistry string
}

func (e UnknownChemistryError) Error() string {
	return fmt.Sprintf("unknown chemistry for %s: %s", e.Target, e.Chemistry)
}

// GeneBlockTooLargeError reports a target whose block cannot fit on a
// single plate.
type GeneBlockTooLargeError struct {
	Target     string
	Labels     int
	Replicates int
	Rows       int
}

func (e GeneBlockTooLargeError) Error() string {
	return fmt.Sprintf("target %q needs %d labels × %d replicates = %d wells over %d rows, which exceeds one %d-well plate",
		e.Target, e.Labels, e.Replicates, e.Labels*e.Replicates, e.Rows, WellsPerPlate)
}

// PlateOverflowError signals a placement-engine invariant violation. It is
// unreachable when the row precheck holds and always indicates a bug.
type PlateOverflowError struct {
	Target string
}

func (e PlateOverflowError) Error() string {
	return fmt.Sprintf("plate overflow while placing wells for %q", e.Target)
}

// IsInputError reports whether err is a deterministic input-validation
// failure that the caller can correct, as opposed to an internal fault.
func IsInputError(err error) bool {
	switch err.(type) {
	case InvalidReplicatesError, EmptySampleListError, NoTargetsError,
		DuplicateTargetError, UnknownChemistryError, GeneBlockTooLargeError:
		return true
	}
	return false
}
