package model

// JobSort selects the ordering of a job listing.
type JobSort string

const (
	JobSortNewest  JobSort = "newest"
	JobSortOldest  JobSort = "oldest"
	JobSortPayHigh JobSort = "pay_high"
	JobSortPayLow  JobSort = "pay_low"
	JobSortSoonest JobSort = "soonest"
)

// Valid returns true if the sort key is known.
func (s JobSort) Valid() bool {
	switch s {
	case JobSortNewest, JobSortOldest, JobSortPayHigh, JobSortPayLow, JobSortSoonest:
		return true
	}
	return false
}

// JobFilters groups optional listing filters. Nil means "no filter".
type JobFilters struct {
	Status        *JobStatus     // Defaults to open when nil
	JobType       *string        // Exact job type
	Division      *string        // Location filters
	District      *string        //
	Upazila       *string        //
	HiringType    *HiringType    //
	PaymentMethod *PaymentMethod //
	MinPay        *float64       // Lower bound on amount/rate
	MaxPay        *float64       // Upper bound on amount/rate
	Search        *string        // Case-insensitive match on title/description
	CreatedBy     *string        // Owner id
}

// JobListOptions groups parameters for listing jobs.
type JobListOptions struct {
	Filters JobFilters
	Sort    JobSort
	Page    int // 1-based
	Limit   int
}

// Offset returns the row offset for the page.
func (o *JobListOptions) Offset() int {
	if o.Page < 1 {
		return 0
	}
	return (o.Page - 1) * o.Limit
}

// JobListResult is the raw page returned by a repository.
type JobListResult struct {
	Jobs  []*Job
	Total int
}

// StandardPayment is the display-ready payment summary shown in listings.
type StandardPayment struct {
	Type     PaymentMethod `json:"type"`
	Display  string        `json:"display"`
	Platform string        `json:"platform,omitempty"`
}

// JobListing is a job transformed for a specific requester.
type JobListing struct {
	*Job
	StandardPayment StandardPayment `json:"standard_payment"`
	Tags            []string        `json:"tags"`
	BidCount        int             `json:"bid_count"`
	UserHasApplied  bool            `json:"user_has_applied"`
}

// JobListPage is the response of a listing request.
type JobListPage struct {
	Jobs  []*JobListing `json:"jobs"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}
