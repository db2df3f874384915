package request

type SeedRequest struct {
	// PagesToFetch defaults to 10 when omitted.
	PagesToFetch int `json:"pagesToFetch" validate:"omitempty,min=1,max=500"`
	// IncludeDetails switches on the per-movie detail fan-out.
	IncludeDetails bool `json:"includeDetails"`
}
