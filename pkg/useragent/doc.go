// Package useragent parses and formats the default User-Agent signature sent
// by Alamofire-based HTTP clients:
//
//	iOS Example/1.0.0 (org.alamofire.iOS-Example; build:1; iOS 13.0.0) Alamofire/5.0.0
//
// The signature carries seven fields:
//   - executable: application display name
//   - app version: semantic version of the application
//   - bundle: bundle or package identifier
//   - app build: build number of one to three integers
//   - OS name: one of macOS(Catalyst), iOS, watchOS, tvOS, macOS, Linux, Windows
//   - OS version: semantic version, always present
//   - library version: semantic version of the client library, always present
//
// The first five are optional. An absent field is written as the literal
// Unknown, and Unknown is never accepted as a real value.
//
// # Architecture
//
// Parse walks the input once, left to right. Each field is read up to its
// delimiter and decoded by a dedicated decoder; the fixed literals between
// fields ("(", " build:", " ", " Alamofire/") must follow directly. String
// is the inverse projection and is what Parse expects to read back.
//
// The build number is normalized: "1.0.0", "1.0" and "1" all parse to the same
// AppBuild, which String renders as "1". Semantic versions must be canonical
// (no "v" prefix, three numeric components) and are handled by
// github.com/Masterminds/semver.
//
// # Usage
//
//	ua, err := useragent.Parse(r.Header.Get(useragent.Header))
//	if err != nil {
//	    // inspect with errors.Is / errors.As
//	}
//	if name, ok := ua.OSName(); ok && name == useragent.OSNameIOS {
//	    // ...
//	}
//
// Building a signature for outgoing requests:
//
//	ua := useragent.New(
//	    useragent.WithExecutable("iOS Example"),
//	    useragent.WithAppVersion(semver.MustParse("1.0.0")),
//	    useragent.WithOSName(useragent.OSNameIOS),
//	    useragent.WithOSVersion(semver.MustParse("13.0.0")),
//	)
//	client := &http.Client{Transport: useragent.NewTransport(nil, ua)}
//
// Or from the environment (USERAGENT_* variables, see Config):
//
//	ua, err := useragent.FromEnv()
//
// # HTTP integration
//
// Transport stamps the signature on outgoing requests. Middleware parses the
// incoming header into the request context (FromContext) and LoggerExtractor
// adds the decoded client to every log record written with that context.
// WithCache puts a CachedParser in front of Parse for busy servers.
//
// # Error Handling
//
// Field failures are *ParseError values carrying the Field and the Stage:
// StageRead when the delimiter closing the field was not found
// (errors.Is(err, ErrReadFailed)), StageParse when the text could not be
// decoded (errors.Is(err, ErrParseFailed)). The cause stays reachable, e.g.
// ErrInvalidVersion, ErrInvalidAppBuild, ErrOSNameMismatch or ErrInvalidUTF8.
// A missing fixed literal is a *MismatchError matching ErrMismatch.
package useragent
