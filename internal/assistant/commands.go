package assistant

import (
	"fmt"
	"strings"

	"gitlab.com/dirk.krummacker/assistant/internal/addressbook"
)

// registerCommands fills the command table. The order of registration is the order of the help
// table and decides ties between equally similar suggestions.
func (a *Assistant) registerCommands() {
	// Contacts
	a.register(&command{names: []string{"add"}, usage: "add <name> [phone]",
		description: "Add a contact or another phone number", group: "Contacts", changes: contactsTarget, run: addContact})
	a.register(&command{names: []string{"change"}, usage: "change <name> <old phone> <new phone>",
		description: "Change a phone number", group: "Contacts", changes: contactsTarget, run: changePhone})
	a.register(&command{names: []string{"remove-phone"}, usage: "remove-phone <name> <phone>",
		description: "Remove a phone number", group: "Contacts", changes: contactsTarget, run: removePhone})
	a.register(&command{names: []string{"delete"}, usage: "delete <name>",
		description: "Delete a contact", group: "Contacts", changes: contactsTarget, run: deleteContact})
	a.register(&command{names: []string{"phone"}, usage: "phone <name>",
		description: "Show the phone numbers of a contact", group: "Contacts", run: showPhone})
	a.register(&command{names: []string{"all"}, usage: "all",
		description: "Show all contacts", group: "Contacts", run: showAllContacts})
	a.register(&command{names: []string{"find"}, usage: "find <text>",
		description: "Search contacts by name, phone, email or birthday", group: "Contacts", run: findContacts})
	a.register(&command{names: []string{"add-email"}, usage: "add-email <name> <email>",
		description: "Set the email address of a contact", group: "Contacts", changes: contactsTarget, run: addEmail})
	a.register(&command{names: []string{"show-email"}, usage: "show-email <name>",
		description: "Show the email address of a contact", group: "Contacts", run: showEmail})
	a.register(&command{names: []string{"remove-email"}, usage: "remove-email <name>",
		description: "Remove the email address of a contact", group: "Contacts", changes: contactsTarget, run: removeEmail})

	// Birthdays
	a.register(&command{names: []string{"add-birthday"}, usage: "add-birthday <name>: <DD.MM.YYYY>",
		description: "Set the birthday of a contact", group: "Birthdays", changes: contactsTarget, run: addBirthday})
	a.register(&command{names: []string{"show-birthday"}, usage: "show-birthday <name>",
		description: "Show the birthday of a contact", group: "Birthdays", run: showBirthday})
	a.register(&command{names: []string{"delete-birthday"}, usage: "delete-birthday <name>",
		description: "Delete the birthday of a contact", group: "Birthdays", changes: contactsTarget, run: deleteBirthday})
	a.register(&command{names: []string{"birthdays"}, usage: "birthdays <days>",
		description: "Show the birthdays of the next days", group: "Birthdays", run: upcomingBirthdays})

	// Addresses
	a.register(&command{names: []string{"add-address"}, usage: "add-address <name>: <street>, <city>, <region>, <postal code>",
		description: "Set the address of a contact", group: "Addresses", changes: contactsTarget, run: addAddress})
	a.register(&command{names: []string{"show-address"}, usage: "show-address <name>",
		description: "Show the address of a contact", group: "Addresses", run: showAddress})
	a.register(&command{names: []string{"delete-address"}, usage: "delete-address <name>",
		description: "Delete the address of a contact", group: "Addresses", changes: contactsTarget, run: deleteAddress})

	// Notes
	a.register(&command{names: []string{"add-note"}, usage: "add-note <title>: <content>",
		description: "Add a note", group: "Notes", changes: notesTarget, run: addNote})
	a.register(&command{names: []string{"edit-note"}, usage: "edit-note <title>: <content>",
		description: "Replace the content of a note", group: "Notes", changes: notesTarget, run: editNote})
	a.register(&command{names: []string{"delete-note"}, usage: "delete-note <title>",
		description: "Delete a note", group: "Notes", changes: notesTarget, run: deleteNote})
	a.register(&command{names: []string{"find-note"}, usage: "find-note <keyword>",
		description: "Search notes by title or content", group: "Notes", run: findNotes})
	a.register(&command{names: []string{"show-notes"}, usage: "show-notes",
		description: "Show all notes", group: "Notes", run: showNotes})
	a.register(&command{names: []string{"add-tag"}, usage: "add-tag <title>: <tag>",
		description: "Add a tag to a note", group: "Notes", changes: notesTarget, run: addTag})
	a.register(&command{names: []string{"remove-tag"}, usage: "remove-tag <title>: <tag>",
		description: "Remove a tag from a note", group: "Notes", changes: notesTarget, run: removeTag})
	a.register(&command{names: []string{"check-tag"}, usage: "check-tag <title>: <tag>",
		description: "Check whether a note carries a tag", group: "Notes", run: checkTag})
	a.register(&command{names: []string{"find-tag"}, usage: "find-tag <tag>",
		description: "Show the notes with a tag", group: "Notes", run: findTag})

	// System
	a.register(&command{names: []string{"hello", "help"}, usage: "hello | help",
		description: "Show this help", group: "System", run: showHelp})
	a.register(&command{names: []string{"close", "exit"}, usage: "close | exit",
		description: "Save and quit", group: "System", exit: true, run: quit})
}

// showHelp lists all commands grouped by area.
func showHelp(a *Assistant, _ string) (string, error) {
	return a.help(), nil
}

// quit ends the session.
func quit(*Assistant, string) (string, error) {
	return goodbyeMessage, nil
}

// addContact takes the last word as the phone number if it consists of digits only. Otherwise all
// words form the name and the contact is added without a phone number.
func addContact(a *Assistant, rest string) (string, error) {
	words := strings.Fields(rest)
	if len(words) == 0 {
		return "", usageError("add <name> [phone]")
	}
	phone := ""
	if last := words[len(words)-1]; len(words) > 1 && isDigits(last) {
		phone = last
		words = words[:len(words)-1]
	}
	status, err := a.contacts.AddContact(strings.Join(words, " "), phone)
	if err != nil {
		return "", err
	}
	return status.String(), nil
}

// changePhone replaces a phone number of the contact.
func changePhone(a *Assistant, rest string) (string, error) {
	name, phones, err := splitLast(rest, 2, "change <name> <old phone> <new phone>")
	if err != nil {
		return "", err
	}
	if err := a.contacts.ChangeContact(name, phones[0], phones[1]); err != nil {
		return "", err
	}
	return "Phone number updated.", nil
}

// removePhone removes a phone number from the contact.
func removePhone(a *Assistant, rest string) (string, error) {
	name, phone, err := splitLast(rest, 1, "remove-phone <name> <phone>")
	if err != nil {
		return "", err
	}
	if err := a.contacts.RemovePhone(name, phone[0]); err != nil {
		return "", err
	}
	return "Phone number removed.", nil
}

// deleteContact removes the contact with all its data.
func deleteContact(a *Assistant, rest string) (string, error) {
	name, err := required(rest, "delete <name>")
	if err != nil {
		return "", err
	}
	if err := a.contacts.Delete(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact '%s' has been deleted.", addressbook.Normalize(name)), nil
}

// showPhone prints the phone numbers of the contact separated by semicolons.
func showPhone(a *Assistant, rest string) (string, error) {
	name, err := required(rest, "phone <name>")
	if err != nil {
		return "", err
	}
	phones, err := a.contacts.ShowPhone(name)
	if err != nil {
		return "", err
	}
	if len(phones) == 0 {
		return fmt.Sprintf("No phone numbers for %s.", addressbook.Normalize(name)), nil
	}
	values := make([]string, len(phones))
	for i, phone := range phones {
		values[i] = phone.String()
	}
	return strings.Join(values, "; "), nil
}

// showAllContacts renders all contacts as a table.
func showAllContacts(a *Assistant, _ string) (string, error) {
	if a.contacts.Len() == 0 {
		return a.contacts.ShowAll(), nil
	}
	return a.contactsTable(a.contacts.Records()), nil
}

// findContacts prints the summary line of every contact that matches the query.
func findContacts(a *Assistant, rest string) (string, error) {
	query, err := required(rest, "find <text>")
	if err != nil {
		return "", err
	}
	found := a.contacts.FindContacts(query)
	if len(found) == 0 {
		return "No matching contacts found.", nil
	}
	lines := make([]string, len(found))
	for i, record := range found {
		lines[i] = record.String()
	}
	return strings.Join(lines, "\n"), nil
}

// addEmail sets or replaces the email address of the contact.
func addEmail(a *Assistant, rest string) (string, error) {
	name, email, err := splitLast(rest, 1, "add-email <name> <email>")
	if err != nil {
		return "", err
	}
	if err := a.contacts.AddEmail(name, email[0]); err != nil {
		return "", err
	}
	return "Email added.", nil
}

// showEmail prints the email address of the contact.
func showEmail(a *Assistant, rest string) (string, error) {
	name, err := required(rest, "show-email <name>")
	if err != nil {
		return "", err
	}
	return a.contacts.ShowEmail(name)
}

// removeEmail clears the email address of the contact.
func removeEmail(a *Assistant, rest string) (string, error) {
	name, err := required(rest, "remove-email <name>")
	if err != nil {
		return "", err
	}
	if err := a.contacts.RemoveEmail(name); err != nil {
		return "", err
	}
	return "Email removed.", nil
}

// addBirthday sets the birthday given after the colon.
func addBirthday(a *Assistant, rest string) (string, error) {
	name, date, err := splitColon(rest, "add-birthday <name>: <DD.MM.YYYY>")
	if err != nil {
		return "", err
	}
	if err := a.contacts.AddBirthday(name, date); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

// showBirthday prints the birthday of the contact.
func showBirthday(a *Assistant, rest string) (string, error) {
	name, err := required(rest, "show-birthday <name>")
	if err != nil {
		return "", err
	}
	return a.contacts.ShowBirthday(name)
}

// deleteBirthday clears the birthday of the contact.
func deleteBirthday(a *Assistant, rest string) (string, error) {
	name, err := required(rest, "delete-birthday <name>")
	if err != nil {
		return "", err
	}
	return a.contacts.DeleteBirthday(name)
}

// upcomingBirthdays renders the birthdays of the next days as a table.
func upcomingBirthdays(a *Assistant, rest string) (string, error) {
	days, err := required(rest, "birthdays <days>")
	if err != nil {
		return "", err
	}
	upcoming, err := a.contacts.GetUpcomingBirthdays(days)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return fmt.Sprintf("There are no birthdays in the next %s days.", days), nil
	}
	rows := make([][]string, len(upcoming))
	for i, u := range upcoming {
		rows[i] = []string{u.Name, u.Birthday, u.CongratulationDate}
	}
	return a.table([]string{"Name", "Birthday", "Congratulation day"}, rows), nil
}

// addAddress sets the address given after the colon as comma separated components.
func addAddress(a *Assistant, rest string) (string, error) {
	name, address, err := splitColon(rest, "add-address <name>: <street>, <city>, <region>, <postal code>")
	if err != nil {
		return "", err
	}
	if err := a.contacts.AddAddress(name, strings.Split(address, ",")); err != nil {
		return "", err
	}
	return fmt.Sprintf("Address added for %s.", addressbook.Normalize(name)), nil
}

// showAddress prints the address of the contact.
func showAddress(a *Assistant, rest string) (string, error) {
	name, err := required(rest, "show-address <name>")
	if err != nil {
		return "", err
	}
	return a.contacts.ShowAddress(name)
}

// deleteAddress clears the address of the contact.
func deleteAddress(a *Assistant, rest string) (string, error) {
	name, err := required(rest, "delete-address <name>")
	if err != nil {
		return "", err
	}
	return a.contacts.DeleteAddress(name)
}

// addNote creates a note from the title before and the content after the colon.
func addNote(a *Assistant, rest string) (string, error) {
	title, content, err := splitColon(rest, "add-note <title>: <content>")
	if err != nil {
		return "", err
	}
	if _, err := a.notes.AddNote(title, content); err != nil {
		return "", err
	}
	return "Note added.", nil
}

// editNote replaces the content of the note.
func editNote(a *Assistant, rest string) (string, error) {
	title, content, err := splitColon(rest, "edit-note <title>: <content>")
	if err != nil {
		return "", err
	}
	if err := a.notes.EditNote(title, content); err != nil {
		return "", err
	}
	return "Note updated.", nil
}

// deleteNote removes the note.
func deleteNote(a *Assistant, rest string) (string, error) {
	title, err := required(rest, "delete-note <title>")
	if err != nil {
		return "", err
	}
	if err := a.notes.DeleteNote(title); err != nil {
		return "", err
	}
	return "Note deleted.", nil
}

// findNotes renders the notes whose title or content contains the keyword.
func findNotes(a *Assistant, rest string) (string, error) {
	keyword, err := required(rest, "find-note <keyword>")
	if err != nil {
		return "", err
	}
	found := a.notes.FindNotesByKeyword(keyword)
	if len(found) == 0 {
		return "No matching notes found.", nil
	}
	return a.notesTable(found), nil
}

// showNotes renders all notes as a table.
func showNotes(a *Assistant, _ string) (string, error) {
	if a.notes.Len() == 0 {
		return a.notes.ShowAll(), nil
	}
	return a.notesTable(a.notes.Notes()), nil
}

// addTag adds the tag after the colon to the note.
func addTag(a *Assistant, rest string) (string, error) {
	title, tag, err := splitColon(rest, "add-tag <title>: <tag>")
	if err != nil {
		return "", err
	}
	if err := a.notes.AddTag(title, tag); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tag '%s' added to note '%s'.", tag, title), nil
}

// removeTag removes the tag after the colon from the note.
func removeTag(a *Assistant, rest string) (string, error) {
	title, tag, err := splitColon(rest, "remove-tag <title>: <tag>")
	if err != nil {
		return "", err
	}
	if err := a.notes.RemoveTag(title, tag); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tag '%s' removed from note '%s'.", tag, title), nil
}

// checkTag tells whether the note carries the tag. A missing tag is not an error.
func checkTag(a *Assistant, rest string) (string, error) {
	title, tag, err := splitColon(rest, "check-tag <title>: <tag>")
	if err != nil {
		return "", err
	}
	exists, err := a.notes.HasTag(title, tag)
	if err != nil {
		return "", err
	}
	if !exists {
		return fmt.Sprintf("Tag '%s' does not exist in note '%s'.", tag, title), nil
	}
	return fmt.Sprintf("Tag '%s' exists in note '%s'.", tag, title), nil
}

// findTag renders the notes that carry the tag, ignoring case.
func findTag(a *Assistant, rest string) (string, error) {
	tag, err := required(rest, "find-tag <tag>")
	if err != nil {
		return "", err
	}
	found := a.notes.FindNotesByTag(tag)
	if len(found) == 0 {
		return fmt.Sprintf("No notes found with tag '%s'.", tag), nil
	}
	return a.notesTable(found), nil
}
