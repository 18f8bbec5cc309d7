// Package validate checks strings files before they ship.
//
// Every file is checked for entries without a name, duplicate names and bare
// apostrophes. A locale file is also compared against the default file for
// missing translations, unknown names and mismatched format specifiers.
// Missing translations and unknown names are warnings; everything else is an
// error.
//
// # HTTP Endpoints
//
//   - GET /validate/:locale : validates a locale file, or the default file
//     when locale is "default".
package validate
