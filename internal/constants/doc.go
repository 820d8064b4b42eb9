// Package constants provides application-wide constant values for the contribart application.
//
// This package centralizes fixed values that are used throughout the
// application. It currently holds the visual elements shown by the
// -logo flag.
//
// # Core Components
//
// - Logo: ASCII art representation of the contribart logo
// - Tagline: The application's tagline/motto
//
// # Usage
//
// The constants in this package can be imported and used directly:
//
//	import "github.com/Nerdlin/nerdlin-contrib-art/internal/constants"
//
//	func displayLogo() {
//	    fmt.Println(constants.Logo)
//	    fmt.Println(constants.Tagline)
//	}
package constants
