package response

import "fmt"

// SeedResponse summarizes one ingestion run.
type SeedResponse struct {
	Message        string `json:"message"`
	TotalProcessed int64  `json:"totalProcessed"`
	PagesRequested int    `json:"pagesRequested"`
}

func NewSeedResponse(totalProcessed int64, pagesRequested int) *SeedResponse {
	return &SeedResponse{
		Message: fmt.Sprintf("Seeding complete. Processed %d movies across %d pages.",
			totalProcessed, pagesRequested),
		TotalProcessed: totalProcessed,
		PagesRequested: pagesRequested,
	}
}
