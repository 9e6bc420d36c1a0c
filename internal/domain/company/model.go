package company

// Profile is the company identity block stamped on every generated
// document. It is re-read from settings on each generation call and never
// mutated by generators.
type Profile struct {
	Name    string
	Address string
	Email   string
	Phone   string
	Website string
	LogoURL string
}
