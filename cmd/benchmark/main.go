package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gitlab.com/dirk.krummacker/assistant/internal/addressbook"
)

// letters are used to build distinct contact names.
const letters = "abcdefghijklmnopqrstuvwxyz"

// Usage example on the command line:
// > go run main.go
//
// The columns show the average duration of one operation in nanoseconds.
func main() {
	fmt.Println()
	fmt.Println("  Elements       ADD    CHANGE      FIND    DELETE ")
	fmt.Println("---------------------------------------------------")
	sizes := []int{1000, 5000, 10000, 50000, 100000}
	for _, loops := range sizes {
		book := addressbook.New()
		names := createNames(loops)
		fmt.Printf("%10d", loops)
		{
			// add contacts
			callInLoop(names, func(name string) {
				if _, err := book.AddContact(name, "0123456789"); err != nil {
					panic(err)
				}
			})
		}
		{
			// change phone numbers
			callInLoop(shuffled(names), func(name string) {
				if err := book.ChangeContact(name, "0123456789", "0987654321"); err != nil {
					panic(err)
				}
			})
		}
		{
			// find contacts
			callInLoop(shuffled(names), func(name string) {
				if _, found := book.Find(strings.ToUpper(name)); !found {
					panic("contact not found: " + name)
				}
			})
		}
		{
			// delete contacts
			callInLoop(shuffled(names), func(name string) {
				if err := book.Delete(name); err != nil {
					panic(err)
				}
			})
		}
		fmt.Println()
	}
}

// callInLoop calls f once per name and prints the average duration.
func callInLoop(names []string, f func(name string)) {
	before := time.Now().UnixNano()
	for _, name := range names {
		f(name)
	}
	after := time.Now().UnixNano()
	fmt.Printf("%10d", (after-before)/int64(len(names)))
}

// createNames returns n distinct names of lower-case letters.
func createNames(n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var sb strings.Builder
		for v := i; ; v /= len(letters) {
			sb.WriteByte(letters[v%len(letters)])
			if v < len(letters) {
				break
			}
		}
		names = append(names, "contact "+sb.String())
	}
	return names
}

// shuffled returns the names in random order.
func shuffled(names []string) []string {
	result := append([]string(nil), names...)
	rand.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}
