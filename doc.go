// Package docmanager is an in-memory document store with upsert,
// lookup by ID and multi-criteria filtered search.
//
//	m, _ := docmanager.New()
//	doc, _ := m.Save(docmanager.NewDocument(
//	    "Clean code", "Lorem ipsum", docmanager.NewAuthor("Denis"), created,
//	))
//	same, ok := m.FindByID(doc.ID)
//	hits := m.Search(docmanager.NewSearch().
//	    WithTitlePrefixes("Clean").
//	    WithCreatedFrom(from).
//	    WithCreatedTo(to))
//
// Save assigns missing document and author IDs and replaces an existing
// document with the same ID in place. Search returns documents in the
// order their IDs were first saved.
//
// In a search request a nil list means "no constraint" while an empty,
// non-nil list matches nothing.
package docmanager
