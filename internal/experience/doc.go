// Package experience recovers dated work history from résumé text and totals
// years of experience per category.
package experience
