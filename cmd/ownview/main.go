// Command ownview is an interactive inspector for copy-on-write owner
// groups: it shows a live set of cow.Shared owners, their payload
// identities, and reference counts while you share, attach, mutate, and
// drop them.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/aberaud/ownkit/cow"
)

func main() {
	var (
		logPath = flag.String("log", "", "Write lifecycle debug log to this file")
		script  = flag.Bool("script", false, "Run the scripted walkthrough instead of the TUI")
	)
	flag.Parse()

	if *logPath != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{*logPath}
		l, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		cow.SetLogger(l)
	}

	if *script {
		runScript()
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal; use -script for plain output")
		os.Exit(1)
	}

	if err := runInteractive(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runScript walks through the copy-on-write protocol step by step on
// stdout, for terminals bubbletea can't drive (or for piping to a file).
func runScript() {
	drops := 0

	fmt.Println("== copy-on-write walkthrough ==")

	s1 := cow.NewShared(&note{text: "v1", drops: &drops})
	fmt.Printf("new s1          payload=%p text=%q count=%d\n", s1.Get(), s1.Get().text, s1.NumRef())

	s2 := s1.Share()
	fmt.Printf("s2 = share(s1)  payload=%p text=%q count=%d\n", s2.Get(), s2.Get().text, s2.NumRef())

	s1.Mut().text = "v2"
	fmt.Printf("mutate via s1   s1 payload=%p text=%q count=%d\n", s1.Get(), s1.Get().text, s1.NumRef())
	fmt.Printf("                s2 payload=%p text=%q count=%d\n", s2.Get(), s2.Get().text, s2.NumRef())

	fresh := &note{text: "standalone", drops: &drops}
	var s3 cow.Shared[*note]
	s3.Attach(fresh)
	fmt.Printf("attach unowned  source=%p owner payload=%p (cloned, count-0 sentinel)\n", fresh, s3.Get())

	s1.Drop()
	s2.Drop()
	s3.Drop()
	fmt.Printf("dropped all     payload destructions=%d\n", drops)
}

// note is the demo payload: a clonable, intrusively counted bit of text.
type note struct {
	cow.RefCount
	text  string
	drops *int
}

func (n *note) Clone() *note { return &note{text: n.text, drops: n.drops} }

func (n *note) Drop() {
	if n.drops != nil {
		*n.drops++
	}
}
