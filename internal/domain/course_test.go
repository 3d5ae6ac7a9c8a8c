package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Lookup(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name           string
		token          string
		expectedCourse Course
		expectedFound  bool
	}{
		{
			name:           "known course",
			token:          "physics",
			expectedCourse: CoursePhysics,
			expectedFound:  true,
		},
		{
			name:           "case insensitive",
			token:          "PCM",
			expectedCourse: CoursePCM,
			expectedFound:  true,
		},
		{
			name:           "surrounding whitespace",
			token:          "  bio ",
			expectedCourse: CourseBio,
			expectedFound:  true,
		},
		{
			name:          "unknown course",
			token:         "history",
			expectedFound: false,
		},
		{
			name:          "empty token",
			token:         "",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, info, found := catalog.Lookup(tt.token)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedCourse, course)
				assert.NotEmpty(t, info.FolderID)
				assert.NotEmpty(t, info.PaymentURL)
			}
		})
	}
}

func TestDefaultCatalog_PriceTiers(t *testing.T) {
	catalog := DefaultCatalog()

	// Two-tier table: combo costs 250, everything else 100
	for course, info := range catalog {
		if course == CoursePCM {
			assert.Equal(t, 250, info.Price)
		} else {
			assert.Equal(t, 100, info.Price, "course %s", course)
		}
	}
}

func TestCatalog_Names(t *testing.T) {
	names := DefaultCatalog().Names()

	assert.Equal(t, []string{"pcm", "physics", "maths", "chemistry", "bio"}, names)
}

func TestPromoFor(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedFound bool
	}{
		{
			name:          "price keyword",
			input:         "price",
			expectedFound: true,
		},
		{
			name:          "multi word keyword",
			input:         "how much",
			expectedFound: true,
		},
		{
			name:          "course name keyword",
			input:         "chemistry",
			expectedFound: true,
		},
		{
			name:          "case insensitive with whitespace",
			input:         "  Combo  ",
			expectedFound: true,
		},
		{
			name:          "not a keyword",
			input:         "hello there",
			expectedFound: false,
		},
		{
			name:          "keyword inside sentence does not match",
			input:         "what is the price of pcm",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo, found := PromoFor(tt.input)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.NotEmpty(t, promo)
			}
		})
	}
}
