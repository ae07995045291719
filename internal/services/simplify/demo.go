package simplify

import (
	"context"
	"strings"
)

// Category is the document class the demo strategy assigns from a filename.
type Category string

const (
	CategoryRental     Category = "rental"
	CategoryNDA        Category = "nda"
	CategoryEmployment Category = "employment"
	CategoryUnknown    Category = "unknown"
)

// classifyTokens are checked in this fixed order; the first substring
// match wins, so a filename containing both "rental" and "nda" is rental.
var classifyTokens = []struct {
	token    string
	category Category
}{
	{"rental", CategoryRental},
	{"nda", CategoryNDA},
	{"employment", CategoryEmployment},
}

// Classify maps a filename to a document category by case-insensitive
// substring match. It is a stand-in for real document understanding and
// exists for the no-network demo mode only.
func Classify(filename string) Category {
	lower := strings.ToLower(filename)
	for _, t := range classifyTokens {
		if strings.Contains(lower, t.token) {
			return t.category
		}
	}
	return CategoryUnknown
}

var demoSummaries = map[Category]string{
	CategoryRental: `This is a rental agreement. In plain terms: you are renting a property from a landlord for a fixed monthly amount. You must pay rent on time each month, keep the property in good condition, and give notice before moving out. The landlord must keep the property livable and return your security deposit if you leave the place as you found it. Breaking the lease early usually costs money, so check the termination clause before signing.`,

	CategoryNDA: `This is a non-disclosure agreement (NDA). In plain terms: you are promising to keep certain information secret. Anything the other party marks or describes as confidential cannot be shared with anyone else, usually for a set number of years. Information that is already public or that you knew beforehand is typically excluded. If you leak confidential information, the other party can sue you for damages.`,

	CategoryEmployment: `This is an employment contract. In plain terms: it sets out your job title, salary, working hours, and benefits. It explains how much notice either side must give to end the employment, what happens to ideas you create at work (they usually belong to the employer), and any restrictions on working for competitors after you leave. Read the termination and non-compete sections carefully before signing.`,

	CategoryUnknown: `This document could not be matched to a known template. The demo mode only recognizes rental agreements, NDAs, and employment contracts by filename. Switch to a remote processing mode to get an AI-generated plain-language summary of this document.`,
}

// Demo is the no-network processing strategy: a fixed literal summary
// chosen by filename classification. It cannot fail.
type Demo struct{}

// NewDemo creates the demo strategy.
func NewDemo() *Demo {
	return &Demo{}
}

// Simplify returns the canned summary for the filename's category.
// The document text is ignored — demo mode performs no analysis.
func (d *Demo) Simplify(_ context.Context, _ string, filename string) (string, error) {
	return demoSummaries[Classify(filename)], nil
}
