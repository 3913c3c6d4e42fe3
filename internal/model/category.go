package model

// Categories is the editorial taxonomy. Both server-side validation and
// client selectors consume this single list.
var Categories = []string{
	"Web Design",
	"Development",
	"Digital Marketing",
	"UI/UX",
	"Branding",
	"Tutorials",
	"Industry News",
	"Company News",
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
