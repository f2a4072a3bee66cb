package sweeper

import "github.com/lerenn/clean-folders/pkg/rules"

// Verdict is what the sweeping policy decides for a single file.
type Verdict int

const (
	// Keep leaves the file in place.
	Keep Verdict = iota
	// DeleteHidden removes a hidden file without asking.
	DeleteHidden
	// DeleteExtension removes a file whose extension is not allowlisted, without asking.
	DeleteExtension
	// Confirm asks before removing a small file.
	Confirm
)

func (v Verdict) String() string {
	switch v {
	case DeleteHidden:
		return ReasonHidden
	case DeleteExtension:
		return ReasonExtension
	case Confirm:
		return ReasonSize
	default:
		return "keep"
	}
}

// Candidate is a file under evaluation.
type Candidate struct {
	Path   string
	Size   int64
	Hidden bool
}

// Classify applies the sweeping rules to a candidate. The first matching rule wins:
// hidden, then extension, then size.
func Classify(c Candidate) Verdict {
	switch {
	case c.Hidden:
		return DeleteHidden
	case !rules.IsAllowedExtension(c.Path):
		return DeleteExtension
	case rules.IsSmall(c.Size):
		return Confirm
	default:
		return Keep
	}
}
