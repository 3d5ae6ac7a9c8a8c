package domain

import "strings"

// promos maps informational keywords to their static promotional
// replies. Matching is exact after trimming and lowercasing.
var promos = map[string]string{
	"price":    "Combo (PCM) is ₹250, every single subject is ₹100. Send \"buy <course>\" to get started!",
	"cost":     "Combo (PCM) is ₹250, every single subject is ₹100. Send \"buy <course>\" to get started!",
	"how much": "Combo (PCM) is ₹250, every single subject is ₹100. Send \"buy <course>\" to get started!",

	"pcm":       "PCM combo: Physics + Chemistry + Maths, full notes and solved papers, all for ₹250. Send \"buy pcm\" to grab it!",
	"physics":   "Physics: complete notes, derivations and solved numericals for ₹100. Send \"buy physics\" to grab it!",
	"maths":     "Maths: complete notes with worked examples for ₹100. Send \"buy maths\" to grab it!",
	"chemistry": "Chemistry: complete notes, reactions and mechanisms for ₹100. Send \"buy chemistry\" to grab it!",
	"bio":       "Biology: complete notes and diagrams for ₹100. Send \"buy bio\" to grab it!",

	"combo":          "Our combo pack covers Physics, Chemistry and Maths together for ₹250 - cheaper than buying them one by one.",
	"single":         "Any single subject is ₹100: physics, maths, chemistry or bio. Send \"buy <subject>\" to pick one.",
	"single subject": "Any single subject is ₹100: physics, maths, chemistry or bio. Send \"buy <subject>\" to pick one.",
}

// PromoFor returns the promotional reply for an informational keyword
func PromoFor(text string) (string, bool) {
	promo, ok := promos[strings.ToLower(strings.TrimSpace(text))]
	return promo, ok
}
