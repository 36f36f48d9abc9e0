package dto

// Request DTOs

// AdvocateListRequest carries the raw query string of the advocates endpoint.
type AdvocateListRequest struct {
	Page      string `url:"page,omitempty"`
	PageSize  string `url:"pageSize,omitempty"`
	Search    string `url:"search"`
	SortBy    string `url:"sortBy,omitempty"`
	SortOrder string `url:"sortOrder,omitempty"`
}

type SeedAdvocateRequest struct {
	FirstName         string   `json:"firstName" validate:"required"`
	LastName          string   `json:"lastName" validate:"required"`
	City              string   `json:"city" validate:"required"`
	Degree            string   `json:"degree" validate:"required"`
	Specialties       []string `json:"specialties" validate:"dive,required"`
	YearsOfExperience int      `json:"yearsOfExperience" validate:"gte=0"`
	PhoneNumber       string   `json:"phoneNumber" validate:"required,numeric"`
}

// Response DTOs

type AdvocateResponse struct {
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	City              string   `json:"city"`
	Degree            string   `json:"degree"`
	Specialties       []string `json:"specialties"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	PhoneNumber       string   `json:"phoneNumber"`
}

// AdvocatePageResponse is the body of GET /api/advocates.
type AdvocatePageResponse struct {
	Data        []AdvocateResponse `json:"data"`
	TotalItems  int                `json:"totalItems"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	PageSize    int                `json:"pageSize"`
}

type SeedResultResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
