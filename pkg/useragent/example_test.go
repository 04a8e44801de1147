package useragent_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/useragentkit/pkg/useragent"

	"github.com/Masterminds/semver"
)

func ExampleParse() {
	ua, err := useragent.Parse("iOS Example/1.0.0 (org.alamofire.iOS-Example; build:1.0.0; iOS 13.0.0) Alamofire/5.0.0")
	if err != nil {
		fmt.Println(err)
		return
	}

	name, _ := ua.Executable()
	osName, _ := ua.OSName()
	fmt.Println(name, osName, ua.OSVersion())
	fmt.Println(ua)
	// Output:
	// iOS Example iOS 13.0.0
	// iOS Example/1.0.0 (org.alamofire.iOS-Example; build:1; iOS 13.0.0) Alamofire/5.0.0
}

func ExampleParse_errors() {
	_, err := useragent.Parse("iOS Example/1.0.0 (org.alamofire.iOS-Example; build:1; Android 13.0.0) Alamofire/5.0.0")

	var perr *useragent.ParseError
	if errors.As(err, &perr) {
		fmt.Println(perr.Field, perr.Stage)
	}
	fmt.Println(errors.Is(err, useragent.ErrOSNameMismatch))
	// Output:
	// os_name parse
	// true
}

func ExampleNew() {
	ua := useragent.New(
		useragent.WithExecutable("Sync Agent"),
		useragent.WithAppVersion(semver.MustParse("2.3.1")),
		useragent.WithAppBuild(useragent.AppBuild{Major: 118, Minor: 2}),
		useragent.WithOSName(useragent.OSNameLinux),
		useragent.WithOSVersion(semver.MustParse("6.1.0")),
	)
	fmt.Println(ua)
	// Output:
	// Sync Agent/2.3.1 (Unknown; build:118.2; Linux 6.1.0) Alamofire/5.6.4
}

func ExampleDefaultUserAgent() {
	fmt.Println(useragent.DefaultUserAgent())
	// Output:
	// Unknown/Unknown (Unknown; build:Unknown; Unknown 0.0.0) Alamofire/5.6.4
}
