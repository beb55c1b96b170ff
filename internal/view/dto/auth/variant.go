package auth

// SignupVariant is the configuration that distinguishes the signup page flavours.
// Behaviour is the same for every variant; only wording and accent change.
type SignupVariant struct {
	Name         string
	Heading      string
	Tagline      string
	ButtonLabel  string
	LoadingLabel string
	// Accent is the CSS modifier applied to the card and button.
	Accent string
}

// DefaultSignupVariant is used when no or an unknown variant is requested.
const DefaultSignupVariant = "default"

var signupVariants = map[string]SignupVariant{
	"default": {
		Name:         "default",
		Heading:      "Create Account",
		Tagline:      "Join our sustainable community",
		ButtonLabel:  "Join the Movement →",
		LoadingLabel: "Creating Account...",
		Accent:       "accent-green",
	},
	"classic": {
		Name:         "classic",
		Heading:      "Create Account",
		Tagline:      "Join our sustainable community",
		ButtonLabel:  "Sign Up",
		LoadingLabel: "Creating Account...",
		Accent:       "accent-teal",
	},
}

// LookupSignupVariant returns the named variant, falling back to the default one.
func LookupSignupVariant(name string) SignupVariant {
	if v, ok := signupVariants[name]; ok {
		return v
	}
	return signupVariants[DefaultSignupVariant]
}
