package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/saylorsolutions/hexcrypt/cmd/internal"
	"github.com/saylorsolutions/hexcrypt/pkg/crypt"
	"github.com/saylorsolutions/hexcrypt/pkg/ihex"
	"github.com/saylorsolutions/hexcrypt/pkg/keyfile"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		versionFlag bool
		passFlag    bool
		genLenFlag  int
	)
	flags := flag.NewFlagSet("hexcrypt", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&versionFlag, "version", "v", false, "Prints the hexcrypt version.")
	flags.BoolVarP(&passFlag, "passphrase", "p", false, "Treat KEY as a passphrase and derive key material from it, instead of reading a key file.")
	flags.IntVarP(&genLenFlag, "genkey", "g", 0, "Generate a key file at KEY with the given number of secure random bytes, then exit.")
	flags.Usage = func() {
		fmt.Printf(`
hexcrypt encrypts or decrypts the data records in an Intel HEX file.
Addresses and record structure are unchanged, but each checksum is updated to match the new payload.
Running the same invocation on its own output restores the original file, since the cipher is its own inverse.

USAGE:  hexcrypt INPUT KEY OUTPUT
        hexcrypt -g LEN KEY

ARGS:
    INPUT is the Intel HEX file to read.
    KEY is a raw binary key file. The whole file is used as key data, and can be of arbitrary size. With -p, KEY is a passphrase instead.
    OUTPUT is where the transformed Intel HEX file is written.

FLAGS:
%s`, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal(internal.ExitUsage, "Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		fmt.Println("hexcrypt", version)
		return
	}

	if genLenFlag > 0 {
		if flags.NArg() != 1 {
			flags.Usage()
			internal.Fatal(internal.ExitUsage, "Expected exactly one KEY argument with -g")
		}
		if err := keyfile.Generate(flags.Arg(0), genLenFlag); err != nil {
			internal.Fatal(internal.ExitIO, "Failed to generate key file: %v", err)
		}
		return
	}

	if flags.NArg() != 3 {
		flags.Usage()
		internal.Fatal(internal.ExitUsage, "Expected INPUT, KEY, and OUTPUT arguments")
	}
	var (
		input  = flags.Arg(0)
		keyArg = flags.Arg(1)
		output = flags.Arg(2)
	)

	key, err := loadKey(keyArg, passFlag)
	if err != nil {
		internal.Fatal(internal.ExitIO, "Error reading key material: %v", err)
	}

	doc, err := parseInput(input)
	if err != nil {
		var parseErr *ihex.ParseError
		if errors.As(err, &parseErr) {
			internal.Fatal(internal.ExitParse, "%s: %v", input, parseErr)
		}
		internal.Fatal(internal.ExitIO, "Can't read input file: %v", err)
	}

	if err := crypt.Apply(doc, key); err != nil {
		internal.Fatal(internal.ExitUsage, "Can't cipher document: %v", err)
	}

	if err := writeOutput(output, doc); err != nil {
		internal.Fatal(internal.ExitIO, "Can't write output file: %v", err)
	}
}

func loadKey(keyArg string, passphrase bool) ([]byte, error) {
	if passphrase {
		return keyfile.Derive([]byte(keyArg))
	}
	return keyfile.Load(keyArg)
}

func parseInput(path string) (*ihex.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return ihex.Parse(f)
}

// writeOutput creates the output file only after parsing and ciphering have
// both succeeded, so a failed run never leaves a plausible-looking partial
// file in place of a good one.
func writeOutput(path string, doc *ihex.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.Serialize(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
