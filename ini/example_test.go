// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/yourbase/iniconf/ini"
)

func ExampleParse() {
	const config = `
		timeout = 30 ; seconds
		[server]
		host = example.com
		port = 8080`
	cfg, err := ini.Parse(strings.NewReader(config))
	if err != nil {
		// handle error
	}

	fmt.Printf("Sections: %q\n", cfg.Sections())
	fmt.Println("Headerless property:", cfg.Get("default", "timeout"))
	fmt.Println("Property in section:", cfg.Get("server", "host"))

	// Output:
	// Sections: ["default" "server"]
	// Headerless property: 30
	// Property in section: example.com
}

func ExampleConfig_Lookup() {
	cfg, err := ini.ParseString("[database]\nname = app\n")
	if err != nil {
		// handle error
	}
	if name, ok := cfg.Lookup("database", "name"); ok {
		fmt.Println(name)
	}
	if _, ok := cfg.Lookup("database", "password"); !ok {
		fmt.Println("password not set")
	}

	// Output:
	// app
	// password not set
}

func ExampleConfig_MarshalText() {
	// new(ini.Config) creates an empty configuration.
	// You can also modify an existing Config from Parse.
	cfg := new(ini.Config)
	cfg.AddValue("server", "host", "example.com")
	cfg.AddValue("server", "port", "8080")

	text, err := cfg.MarshalText()
	if err != nil {
		// handle error
	}
	if _, err := os.Stdout.Write(text); err != nil {
		// handle error
	}

	// Output:
	// [server]
	// host = example.com
	// port = 8080
}
