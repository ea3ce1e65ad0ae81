package entity

import (
	"time"

	"github.com/google/uuid"
)

type TestimonialType string
type TestimonialSource string
type TestimonialStatus string

const (
	TestimonialTypeText   TestimonialType = "text"
	TestimonialTypeVideo  TestimonialType = "video"
	TestimonialTypeImport TestimonialType = "import"

	TestimonialSourceInstagram TestimonialSource = "instagram"
	TestimonialSourceTwitter   TestimonialSource = "twitter"
	TestimonialSourceFacebook  TestimonialSource = "facebook"
	TestimonialSourceLinkedin  TestimonialSource = "linkedin"
	TestimonialSourceTiktok    TestimonialSource = "tiktok"
	TestimonialSourceYoutube   TestimonialSource = "youtube"
	TestimonialSourceOther     TestimonialSource = "other"

	TestimonialStatusPending    TestimonialStatus = "pending"
	TestimonialStatusApproved   TestimonialStatus = "approved"
	TestimonialStatusUnapproved TestimonialStatus = "unapproved"
)

// FeatureKeyForTestimonialType maps a submission type to the quota counter it
// consumes.
func FeatureKeyForTestimonialType(t TestimonialType) FeatureKey {
	switch t {
	case TestimonialTypeImport:
		return FeatureImportSocialMedia
	case TestimonialTypeVideo:
		return FeatureVideo
	default:
		return FeatureMaxTestimoni
	}
}

type Testimonial struct {
	Id            uuid.UUID
	ProjectId     uuid.UUID
	FormId        *uuid.UUID // nullable, kept when the form is deleted
	AuthorName    string
	AuthorEmail   *string
	AuthorTitle   *string
	AuthorCompany *string
	AuthorPhoto   *string
	Text          *string
	Rating        int // 1..5
	Type          TestimonialType
	Source        *TestimonialSource
	MediaURL      *string
	Tags          []string
	Status        TestimonialStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
