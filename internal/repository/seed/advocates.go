// Package seed holds the built-in advocate directory used when no database is configured.
package seed

import "advocate-directory/internal/domain/entity"

var specialties = []string{
	"Bipolar",
	"LGBTQ",
	"Medication/Prescribing",
	"Suicide History/Attempts",
	"General Mental Health (anxiety, depression, stress, grief, life transitions)",
	"Men's issues",
	"Relationship Issues (family, friends, couple, etc)",
	"Trauma & PTSD",
	"Personality disorders",
	"Personal growth",
	"Substance use/abuse",
	"Pediatrics",
	"Women's issues (post-partum, infertility, family planning)",
	"Chronic pain",
	"Weight loss & nutrition",
	"Eating disorders",
	"Diabetic Diet and nutrition",
	"Coaching (leadership, career, academic and wellness)",
	"Life coaching",
	"Obsessive-compulsive disorders",
	"Neuropsychological evaluations & testing (ADHD testing)",
	"Attention and Hyperactivity (ADHD)",
	"Sleep issues",
	"Schizophrenia and psychotic disorders",
	"Learning disorders",
	"Domestic abuse",
	"Cardiovascular health",
}

func pick(indexes ...int) []string {
	picked := make([]string, len(indexes))
	for i, idx := range indexes {
		picked[i] = specialties[idx]
	}
	return picked
}

// Advocates returns a fresh copy of the seed directory in its canonical order.
func Advocates() []entity.Advocate {
	return []entity.Advocate{
		{FirstName: "John", LastName: "Doe", City: "New York", Degree: "MD", Specialties: pick(0, 2, 26), YearsOfExperience: 10, PhoneNumber: "5551234567"},
		{FirstName: "Jane", LastName: "Smith", City: "Los Angeles", Degree: "PhD", Specialties: pick(4, 6), YearsOfExperience: 8, PhoneNumber: "5559876543"},
		{FirstName: "Alice", LastName: "Johnson", City: "Chicago", Degree: "MSW", Specialties: pick(7, 25), YearsOfExperience: 5, PhoneNumber: "5554567890"},
		{FirstName: "Michael", LastName: "Brown", City: "Houston", Degree: "MD", Specialties: pick(13, 26, 14), YearsOfExperience: 12, PhoneNumber: "5556543210"},
		{FirstName: "Emily", LastName: "Davis", City: "Phoenix", Degree: "PhD", Specialties: pick(19, 8), YearsOfExperience: 7, PhoneNumber: "5553210987"},
		{FirstName: "Chris", LastName: "Martinez", City: "Philadelphia", Degree: "MSW", Specialties: pick(1, 5, 9), YearsOfExperience: 9, PhoneNumber: "5557890123"},
		{FirstName: "Jessica", LastName: "Taylor", City: "San Antonio", Degree: "MD", Specialties: pick(12, 11), YearsOfExperience: 11, PhoneNumber: "5554561234"},
		{FirstName: "David", LastName: "Harris", City: "San Diego", Degree: "PhD", Specialties: pick(20, 21, 24), YearsOfExperience: 6, PhoneNumber: "5557896543"},
		{FirstName: "Laura", LastName: "Clark", City: "Dallas", Degree: "MSW", Specialties: pick(10, 3), YearsOfExperience: 4, PhoneNumber: "5550123456"},
		{FirstName: "Daniel", LastName: "Lewis", City: "San Jose", Degree: "MD", Specialties: pick(26, 16), YearsOfExperience: 13, PhoneNumber: "5553217654"},
		{FirstName: "Sarah", LastName: "Lee", City: "Austin", Degree: "PhD", Specialties: pick(17, 18), YearsOfExperience: 10, PhoneNumber: "5551238765"},
		{FirstName: "James", LastName: "King", City: "Jacksonville", Degree: "MSW", Specialties: pick(22, 4), YearsOfExperience: 5, PhoneNumber: "5556540987"},
		{FirstName: "Megan", LastName: "Green", City: "San Francisco", Degree: "MD", Specialties: pick(23, 2), YearsOfExperience: 14, PhoneNumber: "5559873456"},
		{FirstName: "Joshua", LastName: "Walker", City: "Columbus", Degree: "PhD", Specialties: pick(15, 14), YearsOfExperience: 9, PhoneNumber: "5556781234"},
		{FirstName: "Amanda", LastName: "Hall", City: "Fort Worth", Degree: "MSW", Specialties: pick(6, 7, 25), YearsOfExperience: 3, PhoneNumber: "5559872345"},
	}
}
