package kwtable

// TagInfo is human-readable metadata for an integer tag code. It is
// presentation-only: decoding and filtering never consult it, and
// unknown codes in a dataset are not an error.
type TagInfo struct {
	// Code is the integer code as it appears in the export.
	Code int
	// Name is the short display name.
	Name string
	// Description is a longer tooltip text.
	Description string
	// Paid marks ad-based SERP features.
	Paid bool
}

// serpFeatures maps SERP feature codes to display metadata.
var serpFeatures = map[int]TagInfo{
	0:  {Code: 0, Name: "Instant answer", Description: "A direct answer shown above the organic results"},
	1:  {Code: 1, Name: "Knowledge panel", Description: "An information panel about the query's entity"},
	2:  {Code: 2, Name: "Carousel", Description: "A horizontally scrollable result carousel"},
	3:  {Code: 3, Name: "Local pack", Description: "A map with nearby business listings"},
	4:  {Code: 4, Name: "Top stories", Description: "A block of recent news articles"},
	5:  {Code: 5, Name: "Image pack", Description: "A row of image results"},
	6:  {Code: 6, Name: "Sitelinks", Description: "Extra links into sections of the top result"},
	7:  {Code: 7, Name: "Reviews", Description: "Star ratings shown under a result"},
	8:  {Code: 8, Name: "Tweet", Description: "Embedded posts from X (Twitter)"},
	9:  {Code: 9, Name: "Video", Description: "A video result with thumbnail"},
	10: {Code: 10, Name: "Featured video", Description: "A prominent video shown above the organic results"},
	11: {Code: 11, Name: "Featured snippet", Description: "An extracted answer box above the organic results"},
	12: {Code: 12, Name: "AMP", Description: "Accelerated mobile page results"},
	13: {Code: 13, Name: "Image", Description: "A single inline image result"},
	14: {Code: 14, Name: "Ads top", Description: "Paid ads above the organic results", Paid: true},
	15: {Code: 15, Name: "Ads bottom", Description: "Paid ads below the organic results", Paid: true},
	16: {Code: 16, Name: "Shopping ads", Description: "Paid product listings", Paid: true},
	17: {Code: 17, Name: "Hotels pack", Description: "A block of hotel offers"},
	18: {Code: 18, Name: "Jobs search", Description: "A block of job listings"},
	19: {Code: 19, Name: "Featured images", Description: "A prominent image block"},
	20: {Code: 20, Name: "Video carousel", Description: "A horizontally scrollable video block"},
	21: {Code: 21, Name: "People also ask", Description: "Expandable related questions"},
	22: {Code: 22, Name: "FAQ", Description: "Frequently asked questions under a result"},
	23: {Code: 23, Name: "Flights", Description: "A block of flight offers"},
	24: {Code: 24, Name: "Find results on", Description: "Links to results on other sites"},
	25: {Code: 25, Name: "Recipes", Description: "A block of recipe cards"},
	26: {Code: 26, Name: "Related searches", Description: "Suggested related queries"},
	27: {Code: 27, Name: "See results about", Description: "Disambiguation links for the query's entities"},
}

// intents maps search intent codes to display metadata.
var intents = map[int]TagInfo{
	0: {Code: 0, Name: "Commercial", Description: "The user wants to investigate brands or services"},
	1: {Code: 1, Name: "Informational", Description: "The user wants to find an answer to a question"},
	2: {Code: 2, Name: "Navigational", Description: "The user wants to find a specific page or site"},
	3: {Code: 3, Name: "Transactional", Description: "The user wants to complete an action or purchase"},
}

// SerpFeatureInfo returns metadata for a SERP feature code.
func SerpFeatureInfo(code int) (TagInfo, bool) {
	info, ok := serpFeatures[code]
	return info, ok
}

// IntentInfo returns metadata for a search intent code.
func IntentInfo(code int) (TagInfo, bool) {
	info, ok := intents[code]
	return info, ok
}
