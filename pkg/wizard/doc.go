// Package wizard drives interactive construction of feed entries with
// item-type definitions. Prompting goes through the PromptDriver seam so the
// flow is testable without a terminal; the default driver speaks survey.
package wizard
