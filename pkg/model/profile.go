package model

// PersonalInfo is the profile sheet. Every field is optional.
type PersonalInfo struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Age                string `json:"age"`
	Gender             string `json:"gender"`
	Profession         string `json:"profession"`
	RelationshipStatus string `json:"relationshipStatus"`
}

// Option is one entry of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ProfileOptions struct {
	Gender             []Option `json:"gender"`
	Profession         []Option `json:"profession"`
	RelationshipStatus []Option `json:"relationshipStatus"`
}

var GenderOptions = []Option{
	{"male", "Male"},
	{"female", "Female"},
	{"non-binary", "Non-binary"},
	{"genderfluid", "Genderfluid"},
	{"agender", "Agender"},
	{"other", "Other"},
	{"prefer-not-to-say", "Prefer not to say"},
}

var ProfessionOptions = []Option{
	{"student", "Student"},
	{"working-professional", "Working Professional"},
	{"business-owner", "Business Owner"},
	{"entrepreneur", "Entrepreneur"},
	{"freelancer", "Freelancer"},
	{"retired", "Retired"},
	{"homemaker", "Homemaker"},
	{"unemployed", "Unemployed"},
	{"part-time", "Part-time Worker"},
	{"consultant", "Consultant"},
	{"artist", "Artist/Creative"},
	{"healthcare", "Healthcare Professional"},
	{"educator", "Educator/Teacher"},
	{"other", "Other"},
}

var RelationshipOptions = []Option{
	{"single", "Single"},
	{"dating", "Dating"},
	{"in-relationship", "In a Relationship"},
	{"engaged", "Engaged"},
	{"married", "Married"},
	{"separated", "Separated"},
	{"divorced", "Divorced"},
	{"widowed", "Widowed"},
	{"complicated", "It's Complicated"},
	{"prefer-not-to-say", "Prefer not to say"},
}

func DefaultProfileOptions() ProfileOptions {
	return ProfileOptions{
		Gender:             GenderOptions,
		Profession:         ProfessionOptions,
		RelationshipStatus: RelationshipOptions,
	}
}
