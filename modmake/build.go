package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	hexcryptVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	hexcrypt := NewAppBuild("hexcrypt", "cmd/hexcrypt", hexcryptVersion)
	hexcrypt.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", hexcryptVersion).
			CgoEnabled(false)
	})
	hexcrypt.Variant("windows", "amd64")
	hexcrypt.Variant("linux", "amd64")
	hexcrypt.Variant("linux", "arm64")
	hexcrypt.Variant("darwin", "amd64")
	hexcrypt.Variant("darwin", "arm64")
	b.ImportApp(hexcrypt)

	b.Execute()
}
