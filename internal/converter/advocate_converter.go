package converter

import (
	"slices"

	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/domain/entity"
	"advocate-directory/internal/query"
)

// AdvocateToResponse converts an Advocate entity to AdvocateResponse DTO
func AdvocateToResponse(advocate *entity.Advocate) *dto.AdvocateResponse {
	if advocate == nil {
		return nil
	}

	return &dto.AdvocateResponse{
		FirstName:         advocate.FirstName,
		LastName:          advocate.LastName,
		City:              advocate.City,
		Degree:            advocate.Degree,
		Specialties:       nonNil(advocate.Specialties),
		YearsOfExperience: advocate.YearsOfExperience,
		PhoneNumber:       advocate.PhoneNumber,
	}
}

// AdvocatesToResponses converts a slice of Advocate entities to slice of AdvocateResponse DTOs
func AdvocatesToResponses(advocates []entity.Advocate) []dto.AdvocateResponse {
	responses := make([]dto.AdvocateResponse, len(advocates))
	for i := range advocates {
		responses[i] = *AdvocateToResponse(&advocates[i])
	}
	return responses
}

// PageToResponse converts a query result page to the endpoint's response body
func PageToResponse(page query.Page) *dto.AdvocatePageResponse {
	return &dto.AdvocatePageResponse{
		Data:        AdvocatesToResponses(page.Records),
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
	}
}

// SeedRequestToAdvocate converts a seed request DTO to an Advocate entity
func SeedRequestToAdvocate(req *dto.SeedAdvocateRequest) *entity.Advocate {
	return &entity.Advocate{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		City:              req.City,
		Degree:            req.Degree,
		Specialties:       slices.Clone(req.Specialties),
		YearsOfExperience: req.YearsOfExperience,
		PhoneNumber:       req.PhoneNumber,
	}
}

// AdvocateToSeedRequest converts an Advocate entity to a seed request DTO
func AdvocateToSeedRequest(advocate *entity.Advocate) *dto.SeedAdvocateRequest {
	return &dto.SeedAdvocateRequest{
		FirstName:         advocate.FirstName,
		LastName:          advocate.LastName,
		City:              advocate.City,
		Degree:            advocate.Degree,
		Specialties:       slices.Clone(advocate.Specialties),
		YearsOfExperience: advocate.YearsOfExperience,
		PhoneNumber:       advocate.PhoneNumber,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}
