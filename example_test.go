package lorekeep_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lorekeep/lorekeep"
	"github.com/lorekeep/lorekeep/pkg/core"
)

// Example_basic demonstrates creating a note and giving it a title.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "lorekeep-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// First run seeds the demo campaign and persists it.
	svc, err := lorekeep.New(filepath.Join(tmpDir, "notes.json"))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	note, err := svc.Create(ctx, core.SectionQuests)
	if err != nil {
		log.Fatal(err)
	}

	title := "The Sunken Crown"
	if err := svc.Update(ctx, note.ID, core.Patch{Title: &title}); err != nil {
		log.Fatal(err)
	}

	fmt.Println(svc.Note(note.ID).Address())
	// Output:
	// quests/the-sunken-crown
}

// Example_followLink demonstrates the wiki-link flow: following a link
// with no matching note creates a stub instead of failing.
func Example_followLink() {
	tmpDir, err := os.MkdirTemp("", "lorekeep-link-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := lorekeep.New(filepath.Join(tmpDir, "notes.json"))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// "Captain Merrow" exists in the seeded campaign; "Ghost Port" does not.
	existing, err := svc.FollowLink(ctx, "Captain Merrow")
	if err != nil {
		log.Fatal(err)
	}
	stub, err := svc.FollowLink(ctx, "Ghost Port")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(existing.Address())
	fmt.Println(stub.Slug, stub.Tags)
	// Output:
	// npcs/captain-merrow
	// ghost-port [stub]
}
