// Package diagnostic collects structured findings about column profiles:
// errors that prevent generators from being built, and warnings about
// configurations that build but are likely to fail or surprise at draw time.
package diagnostic
