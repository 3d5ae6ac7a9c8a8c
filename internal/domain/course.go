package domain

import "strings"

// Course identifies one of the fixed sellable products
type Course string

const (
	CoursePCM       Course = "pcm"
	CoursePhysics   Course = "physics"
	CourseMaths     Course = "maths"
	CourseChemistry Course = "chemistry"
	CourseBio       Course = "bio"
)

// CourseInfo holds the static per-course data: the Drive folder that
// access is granted on, the price in rupees and the payment page
type CourseInfo struct {
	FolderID   string
	Price      int
	PaymentURL string
}

// Catalog maps course identifiers to their folder, price and payment
// page. Read-only, configured at startup.
type Catalog map[Course]CourseInfo

// DefaultCatalog returns the compiled-in course table. The combo (pcm)
// course is the only one on the higher price tier.
func DefaultCatalog() Catalog {
	return Catalog{
		CoursePCM: {
			FolderID:   "1-vabXx9a0qu5M8MwVtKYq1UFSW_FF5Pe",
			Price:      250,
			PaymentURL: "https://rzp.io/l/coursebot-pcm",
		},
		CoursePhysics: {
			FolderID:   "1OVjZFvLTroUiHRY4naSkN-pfJsifv913",
			Price:      100,
			PaymentURL: "https://rzp.io/l/coursebot-physics",
		},
		CourseMaths: {
			FolderID:   "1Qm4hTzWcLpxK2o8RdYeB7nJaUfs0Gv2x",
			Price:      100,
			PaymentURL: "https://rzp.io/l/coursebot-maths",
		},
		CourseChemistry: {
			FolderID:   "1Xr9pLwNbAc5tY3uKeHqZ8mVjDo6Ts1iE",
			Price:      100,
			PaymentURL: "https://rzp.io/l/coursebot-chemistry",
		},
		CourseBio: {
			FolderID:   "1Bf2sNvQkXd7gW4zJrMyU0hCaEp9Lo5tR",
			Price:      100,
			PaymentURL: "https://rzp.io/l/coursebot-bio",
		},
	}
}

// Lookup resolves a raw course token, case-insensitively
func (c Catalog) Lookup(token string) (Course, CourseInfo, bool) {
	course := Course(strings.ToLower(strings.TrimSpace(token)))
	info, ok := c[course]
	return course, info, ok
}

// Names returns the course identifiers in a stable order, for error
// replies listing valid courses
func (c Catalog) Names() []string {
	order := []Course{CoursePCM, CoursePhysics, CourseMaths, CourseChemistry, CourseBio}
	names := make([]string, 0, len(c))
	for _, course := range order {
		if _, ok := c[course]; ok {
			names = append(names, string(course))
		}
	}
	return names
}
