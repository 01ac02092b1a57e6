package types

// Status describes what install did for one library.
type Status string

// Install statuses.
const (
	StatusInstalled Status = "installed"
	StatusSkipped   Status = "skipped"
	StatusUpToDate  Status = "up-to-date"
	StatusStale     Status = "stale"
)

// InstallResult reports the outcome of installing a single library.
type InstallResult struct {
	Library Library `json:"library"`
	Dest    string  `json:"dest"`
	Status  Status  `json:"status"`
}

// Copied reports whether the install wrote a new copy.
func (r InstallResult) Copied() bool {
	return r.Status == StatusInstalled
}
