package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/idlink/internal/bidirectional"
	"github.com/roach88/idlink/internal/ident"
	"github.com/roach88/idlink/internal/idgen"
	"github.com/roach88/idlink/internal/phantom"
	"github.com/roach88/idlink/internal/uuidid"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Random bool // mint UUIDv7 payloads instead of the fixed ones
}

// DemoSection is one titled block of demo output.
type DemoSection struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// DemoReport is the full demo output.
type DemoReport struct {
	Sections []DemoSection `json:"sections"`
}

// Account and Session are the entity kinds of the UUID demo.
type Account struct {
	id   uuidid.UUID[Account]
	name string
}

func (a Account) ID() uuidid.UUID[Account] { return a.id }

type Session struct {
	id      uuidid.UUID[Session]
	account uuidid.UUID[Account]
}

func (s Session) ID() uuidid.UUID[Session] { return s.id }

var (
	_ ident.Link[Account, uuidid.UUID[Account], uuid.UUID]
	_ ident.Link[Session, uuidid.UUID[Session], uuid.UUID]
)

// demoUUIDs keep the default demo output reproducible.
var demoUUIDs = []uuid.UUID{
	uuid.MustParse("0190b5a8-0000-7000-8000-000000000001"),
	uuid.MustParse("0190b5a8-0000-7000-8000-000000000002"),
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show identifiers of distinct kinds at runtime",
		Long: `Walk through the runtime side of typed identifiers.

Entities of different kinds built from the same raw value keep distinct
identifiers, identifiers work as map keys, and UUID payloads carry the
same guarantees. The compile-time side is exercised by "idlink check"
and "idlink scenario".

Examples:
  idlink demo
  idlink demo --random
  idlink demo --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var gen idgen.UUIDGenerator = idgen.NewFixedGenerator(demoUUIDs...)
			if opts.Random {
				gen = idgen.UUIDv7Generator{}
			}
			report := BuildDemo(gen)

			if opts.Format == "json" {
				formatter := newFormatter(opts.RootOptions, cmd)
				return formatter.Success(report)
			}
			printDemo(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Random, "random", false, "mint UUIDv7 payloads instead of fixed ones")

	return cmd
}

// BuildDemo runs the demonstration. gen must yield at least two payloads.
func BuildDemo(gen idgen.UUIDGenerator) DemoReport {
	return DemoReport{Sections: []DemoSection{
		demoBidirectional(),
		demoPhantom(),
		demoLookup(),
		demoUUID(gen),
	}}
}

func demoBidirectional() DemoSection {
	foo := bidirectional.NewFoo(bidirectional.NewFooID(1), "foo")
	bar := bidirectional.NewBar(bidirectional.NewBarID(1), "bar")

	return DemoSection{
		Title: "Foo and Bar built from raw value 1",
		Lines: []string{
			fmt.Sprintf("foo.ID() = %#v", foo.ID()),
			fmt.Sprintf("bar.ID() = %#v", bar.ID()),
			fmt.Sprintf("same raw value: %t", foo.ID().Raw() == bar.ID().Raw()),
			"a FooID passed where a BarID is required does not compile",
		},
	}
}

func demoPhantom() DemoSection {
	fooID := phantom.New[phantom.Foo](1)
	barID := phantom.New[phantom.Bar](1)
	again := phantom.New[phantom.Foo](1)

	return DemoSection{
		Title: "One generic identifier, two kinds",
		Lines: []string{
			fmt.Sprintf("%#v and %#v coexist", fooID, barID),
			fmt.Sprintf("%#v == %#v: %t", fooID, again, fooID == again),
			fmt.Sprintf("equal hashes: %t", fooID.Hash() == again.Hash()),
			"comparing or converting across kinds does not compile",
		},
	}
}

func demoLookup() DemoSection {
	seq := idgen.NewSequence()
	byID := make(map[phantom.ID[phantom.Foo]]phantom.Foo)
	for i := 0; i < 3; i++ {
		id := idgen.NextID[phantom.Foo](seq)
		byID[id] = phantom.NewFoo(id, fmt.Sprintf("foo-%d", id.Raw()))
	}

	var lines []string
	for raw := int64(1); raw <= 4; raw++ {
		id := phantom.New[phantom.Foo](raw)
		if foo, ok := byID[id]; ok {
			lines = append(lines, fmt.Sprintf("%#v -> %s", id, foo.Name()))
		} else {
			lines = append(lines, fmt.Sprintf("%#v -> absent", id))
		}
	}

	return DemoSection{Title: "Identifiers as map keys", Lines: lines}
}

func demoUUID(gen idgen.UUIDGenerator) DemoSection {
	account := Account{id: idgen.NextUUID[Account](gen), name: "ada"}
	session := Session{id: idgen.NextUUID[Session](gen), account: account.ID()}

	return DemoSection{
		Title: "UUID payloads",
		Lines: []string{
			fmt.Sprintf("account.ID() = %#v", account.ID()),
			fmt.Sprintf("session.ID() = %#v", session.ID()),
			fmt.Sprintf("session belongs to account: %t", session.account == account.ID()),
			fmt.Sprintf("account minted first: %t", account.ID().Compare(uuidid.New[Account](session.ID().Raw())) < 0),
		},
	}
}

func printDemo(w io.Writer, report DemoReport) {
	for i, s := range report.Sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, s.Title)
		for _, line := range s.Lines {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}
