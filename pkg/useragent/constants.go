package useragent

// Unknown is the literal written in place of every absent optional field.
const Unknown = "Unknown"

const (
	// Header is the HTTP header carrying the signature.
	Header = "User-Agent"

	// LibraryName is the fixed product token in front of the library version.
	LibraryName = "Alamofire"

	// DefaultOSVersion is used when no OS version is configured.
	DefaultOSVersion = "0.0.0"

	// DefaultLibraryVersion is the Alamofire release the signature grammar
	// was taken from.
	DefaultLibraryVersion = "5.6.4"
)

// Literals between fields, in wire order.
const (
	executableEnd  = '/'
	appVersionEnd  = ' '
	commentStart   = "("
	bundleEnd      = ';'
	appBuildPrefix = " build:"
	appBuildEnd    = ';'
	osNamePrefix   = " "
	osNameEnd      = ' '
	osVersionEnd   = ')'
	libraryPrefix  = " " + LibraryName + "/"
	lineTerminator = '\n'
)
