//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"
	"time"

	"github.com/quillclouds/goquill/internal/store"
	"github.com/quillclouds/goquill/pkg/docstore"
	"github.com/quillclouds/goquill/pkg/highlight"
	"github.com/quillclouds/goquill/pkg/mentions"
	"github.com/quillclouds/goquill/pkg/pool"
	"github.com/quillclouds/goquill/pkg/response"
)

// Version info
const Version = "0.3.0" // Live highlight + persistent store

// Global state
var docs *docstore.Store          // In-memory leaf snapshots of open documents
var sqlStore *store.SQLiteStore   // SQLite persistent store
var controllers map[string]*highlight.Controller
var entitySnapshot []mentions.Entity
var eventHandler js.Value // Host callback for hover/click/context-menu

func main() {
	docs = docstore.New()
	controllers = make(map[string]*highlight.Controller)
	eventHandler = js.Undefined()

	fmt.Println("[GoQuill] WASM Ready v" + Version)

	js.Global().Set("GoQuill", js.ValueOf(map[string]interface{}{
		"version":    js.FuncOf(getVersion),
		"initialize": js.FuncOf(initialize),
		// Entity registry
		"setEntities":    js.FuncOf(setEntities),
		"suggestAliases": js.FuncOf(suggestAliases),
		// Per-document highlight sessions
		"openDocument":       js.FuncOf(openDocument),
		"closeDocument":      js.FuncOf(closeDocument),
		"applyTransaction":   js.FuncOf(applyTransaction),
		"decorations":        js.FuncOf(decorations),
		"setIgnoredEntities": js.FuncOf(setIgnoredEntities),
		"ignoredEntities":    js.FuncOf(ignoredEntities),
		"relatedEntities":    js.FuncOf(relatedEntities),
		// Pointer interaction (decoration index based)
		"setEventHandler": js.FuncOf(setEventHandler),
		"pointerEnter":    js.FuncOf(pointerEnter),
		"pointerLeave":    js.FuncOf(pointerLeave),
		"click":           js.FuncOf(click),
		"contextMenu":     js.FuncOf(contextMenu),
		// DocStore API
		"hydrateDocuments": js.FuncOf(hydrateDocuments),
		"removeDocument":   js.FuncOf(removeDocument),
		"docCount":         js.FuncOf(docCount),
		// SQLite Store API (Persistent Data Layer)
		"storeInit":            js.FuncOf(storeInit),
		"storeUpsertEntity":    js.FuncOf(storeUpsertEntity),
		"storeGetEntity":       js.FuncOf(storeGetEntity),
		"storeGetEntityByName": js.FuncOf(storeGetEntityByName),
		"storeDeleteEntity":    js.FuncOf(storeDeleteEntity),
		"storeListEntities":    js.FuncOf(storeListEntities),
		"storeLoadEntities":    js.FuncOf(storeLoadEntities),
		"storeUpsertDocument":  js.FuncOf(storeUpsertDocument),
		"storeGetDocument":     js.FuncOf(storeGetDocument),
		"storeDeleteDocument":  js.FuncOf(storeDeleteDocument),
		"storeListDocuments":   js.FuncOf(storeListDocuments),
		"storeSetIgnored":      js.FuncOf(storeSetIgnored),
		"storeGetIgnored":      js.FuncOf(storeGetIgnored),
		// Store Export/Import (OPFS sync)
		"storeExport": js.FuncOf(storeExport),
		"storeImport": js.FuncOf(storeImport),
	}))

	select {}
}

// getVersion returns the module version
func getVersion(this js.Value, args []js.Value) interface{} {
	return Version
}

// initialize resets all session state and optionally loads an entity set.
// Args: [entitiesJSON string] - optional JSON array of entities
func initialize(this js.Value, args []js.Value) interface{} {
	docs.Clear()
	controllers = make(map[string]*highlight.Controller)
	entitySnapshot = nil

	if len(args) > 0 && args[0].String() != "" && args[0].String() != "[]" {
		var entities []mentions.Entity
		if err := json.Unmarshal([]byte(args[0].String()), &entities); err != nil {
			return errorResult("invalid entities json: " + err.Error())
		}
		entitySnapshot = entities
		fmt.Println("[GoQuill] ✅ Entity set loaded:", len(entities), "entities")
	}

	return successResult("initialized")
}

// =============================================================================
// Entity Registry API
// =============================================================================

// setEntities replaces the entity snapshot for every open document session.
// The pattern index is rebuilt only when the snapshot actually changed.
// Args: [entitiesJSON string]
func setEntities(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("setEntities requires 1 arg: entitiesJSON")
	}

	var entities []mentions.Entity
	if err := json.Unmarshal([]byte(args[0].String()), &entities); err != nil {
		return errorResult("invalid entities json: " + err.Error())
	}

	entitySnapshot = entities
	for id, c := range controllers {
		if err := c.SetEntities(entities); err != nil {
			return errorResult("set entities for " + id + ": " + err.Error())
		}
	}

	return successResult(fmt.Sprintf("set %d entities", len(entities)))
}

// suggestAliases derives nickname aliases for a new entity name.
// Args: [name string, type string]
// Returns: JSON array of lowercase alias strings
func suggestAliases(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("suggestAliases requires 2 args: name, type")
	}

	aliases := mentions.SuggestAliases(args[0].String(), mentions.ParseType(args[1].String()))
	if aliases == nil {
		return "[]"
	}
	bytes, _ := json.Marshal(aliases)
	return string(bytes)
}

// =============================================================================
// Per-Document Highlight Sessions
// =============================================================================

func controllerFor(docID string) *highlight.Controller {
	return controllers[docID]
}

// openDocument creates a highlight session for a document.
// Args: [docID string]
func openDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("openDocument requires 1 arg: docID")
	}
	docID := args[0].String()

	c := highlight.NewController(highlight.Events{
		OnEntityHover:       func(e *mentions.Entity, r *highlight.Rect) { emitEvent(docID, "hover", e, r, nil) },
		OnEntityClick:       func(e *mentions.Entity, ev highlight.PointerEvent) { emitEvent(docID, "click", e, nil, &ev) },
		OnEntityContextMenu: func(e *mentions.Entity, ev highlight.PointerEvent) { emitEvent(docID, "contextmenu", e, nil, &ev) },
	})
	if entitySnapshot != nil {
		if err := c.SetEntities(entitySnapshot); err != nil {
			return errorResult("open: " + err.Error())
		}
	}
	controllers[docID] = c

	// Replay the stored snapshot so a reopened document highlights immediately.
	if leaves := docs.Leaves(docID); leaves != nil {
		c.Apply(highlight.Transaction{DocChanged: true, Leaves: leaves})
	}

	return successResult("opened " + docID)
}

// closeDocument tears down a highlight session.
// Args: [docID string]
func closeDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("closeDocument requires 1 arg: docID")
	}
	delete(controllers, args[0].String())
	return successResult("closed")
}

// applyTransaction feeds one editor transaction to a document's controller.
// Selection-only transactions (docChanged=false) return the prior decorations
// without rescanning.
// Args: [docID string, docChanged bool, leavesJSON string, version int64 (optional)]
// Returns: SLIM response {decorations, timing_us}
func applyTransaction(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorResult("applyTransaction requires 3+ args: docID, docChanged, leavesJSON")
	}

	docID := args[0].String()
	c := controllerFor(docID)
	if c == nil {
		return errorResult("document not open: " + docID)
	}

	docChanged := args[1].Bool()
	var leaves []highlight.Leaf
	if docChanged {
		if err := json.Unmarshal([]byte(args[2].String()), &leaves); err != nil {
			return errorResult("invalid leaves json: " + err.Error())
		}
	}

	start := time.Now()
	decos := c.Apply(highlight.Transaction{DocChanged: docChanged, Leaves: leaves})
	duration := time.Since(start).Microseconds()

	if docChanged {
		var version int64
		if len(args) > 3 {
			version = int64(args[3].Int())
		}
		docs.Upsert(docID, leaves, version)
	}

	bytes, err := response.MarshalSlimResponse(decos, duration)
	if err != nil {
		return errorResult(err.Error())
	}
	return string(bytes)
}

// decorations returns the current decoration set for a document.
// Args: [docID string]
func decorations(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("decorations requires 1 arg: docID")
	}
	c := controllerFor(args[0].String())
	if c == nil {
		return errorResult("document not open: " + args[0].String())
	}

	bytes, err := response.MarshalSlimResponse(c.Decorations(), 0)
	if err != nil {
		return errorResult(err.Error())
	}
	return string(bytes)
}

// setIgnoredEntities replaces a document's ignore list (entity names).
// Args: [docID string, namesJSON string]
func setIgnoredEntities(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("setIgnoredEntities requires 2 args: docID, namesJSON")
	}
	c := controllerFor(args[0].String())
	if c == nil {
		return errorResult("document not open: " + args[0].String())
	}

	var names []string
	if err := json.Unmarshal([]byte(args[1].String()), &names); err != nil {
		return errorResult("invalid names json: " + err.Error())
	}

	c.SetIgnoredEntities(names)
	return successResult(fmt.Sprintf("ignoring %d names", len(names)))
}

// ignoredEntities returns a document's current ignore list.
// Args: [docID string]
func ignoredEntities(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("ignoredEntities requires 1 arg: docID")
	}
	c := controllerFor(args[0].String())
	if c == nil {
		return errorResult("document not open: " + args[0].String())
	}

	names := c.IgnoredEntities()
	if names == nil {
		return "[]"
	}
	bytes, _ := json.Marshal(names)
	return string(bytes)
}

// relatedEntities returns the distinct entities mentioned in a document, in
// first-appearance order.
// Args: [docID string]
func relatedEntities(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("relatedEntities requires 1 arg: docID")
	}
	c := controllerFor(args[0].String())
	if c == nil {
		return errorResult("document not open: " + args[0].String())
	}

	items := pool.GetSlice()
	for _, e := range c.Related() {
		items = append(items, e)
	}
	bytes, _ := json.Marshal(items)
	pool.PutSlice(items)
	return string(bytes)
}

// =============================================================================
// Pointer Interaction
// =============================================================================

// setEventHandler registers the host callback for entity events.
// Args: [handler function(payloadJSON string)]
func setEventHandler(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("setEventHandler requires 1 arg: handler")
	}
	eventHandler = args[0]
	return successResult("handler registered")
}

// emitEvent forwards a controller callback to the registered host handler.
func emitEvent(docID, kind string, entity *mentions.Entity, rect *highlight.Rect, ev *highlight.PointerEvent) {
	if eventHandler.IsUndefined() || eventHandler.IsNull() {
		return
	}

	payload := pool.GetMap()
	defer pool.PutMap(payload)

	payload["docId"] = docID
	payload["kind"] = kind
	if entity != nil {
		payload["entityId"] = entity.ID
		payload["entityName"] = entity.Name
		payload["entityType"] = entity.Type.String()
	}
	if rect != nil {
		payload["rect"] = map[string]interface{}{
			"x": rect.X, "y": rect.Y, "width": rect.Width, "height": rect.Height,
		}
	}
	if ev != nil {
		payload["pointer"] = map[string]interface{}{
			"x": ev.X, "y": ev.Y, "button": ev.Button,
		}
	}

	bytes, _ := json.Marshal(payload)
	eventHandler.Invoke(string(bytes))
}

// pointerEnter dispatches a hover for the decoration at an index.
// Args: [docID string, index int, rectJSON string]
func pointerEnter(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorResult("pointerEnter requires 3 args: docID, index, rectJSON")
	}
	c := controllerFor(args[0].String())
	if c == nil {
		return errorResult("document not open: " + args[0].String())
	}

	var rect highlight.Rect
	if err := json.Unmarshal([]byte(args[2].String()), &rect); err != nil {
		return errorResult("invalid rect json: " + err.Error())
	}

	c.PointerEnter(args[1].Int(), rect)
	return successResult("ok")
}

// pointerLeave clears the hover.
// Args: [docID string]
func pointerLeave(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("pointerLeave requires 1 arg: docID")
	}
	c := controllerFor(args[0].String())
	if c == nil {
		return errorResult("document not open: " + args[0].String())
	}

	c.PointerLeave()
	return successResult("ok")
}

// click dispatches a click on the decoration at an index.
// Args: [docID string, index int, eventJSON string]
func click(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorResult("click requires 3 args: docID, index, eventJSON")
	}
	c := controllerFor(args[0].String())
	if c == nil {
		return errorResult("document not open: " + args[0].String())
	}

	var ev highlight.PointerEvent
	if err := json.Unmarshal([]byte(args[2].String()), &ev); err != nil {
		return errorResult("invalid event json: " + err.Error())
	}

	c.Click(args[1].Int(), ev)
	return successResult("ok")
}

// contextMenu dispatches a context-menu event on the decoration at an index.
// Args: [docID string, index int, eventJSON string]
// Returns: true when the host should suppress its default menu
func contextMenu(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return false
	}
	c := controllerFor(args[0].String())
	if c == nil {
		return false
	}

	var ev highlight.PointerEvent
	if err := json.Unmarshal([]byte(args[2].String()), &ev); err != nil {
		return false
	}

	return c.ContextMenu(args[1].Int(), ev)
}

// =============================================================================
// DocStore API - In-memory document snapshots
// =============================================================================

// hydrateDocuments bulk-loads plain-text documents into the DocStore.
// Called once at startup. No scanning - just storage.
// Args: [docsJSON string] - Array of {id, text, version?}
func hydrateDocuments(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("hydrateDocuments requires 1 arg: docsJSON")
	}

	var input []struct {
		ID      string `json:"id"`
		Text    string `json:"text"`
		Version int64  `json:"version"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return errorResult("invalid docs json: " + err.Error())
	}

	docsList := make([]docstore.Document, len(input))
	for i, d := range input {
		docsList[i] = docstore.Document{
			ID:      d.ID,
			Leaves:  highlight.LeavesFromText(d.Text),
			Version: d.Version,
		}
	}

	count := docs.Hydrate(docsList)
	fmt.Printf("[GoQuill] ✅ DocStore hydrated: %d documents\n", count)
	return successResult(fmt.Sprintf("hydrated %d documents", count))
}

// removeDocument deletes a document snapshot and its session.
// Args: [id string]
func removeDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("removeDocument requires 1 arg: id")
	}

	id := args[0].String()
	docs.Remove(id)
	delete(controllers, id)
	return successResult("removed " + id)
}

// docCount returns the number of documents in DocStore.
func docCount(this js.Value, args []js.Value) interface{} {
	return docs.Count()
}

// =============================================================================
// SQLite Store API - Persistent Data Layer
// =============================================================================

// storeInit initializes the SQLite store.
// Args: [] (uses in-memory database for WASM)
func storeInit(this js.Value, args []js.Value) interface{} {
	var err error
	sqlStore, err = store.NewSQLiteStore()
	if err != nil {
		return errorResult("failed to initialize SQLite store: " + err.Error())
	}
	fmt.Println("[GoQuill] ✅ SQLite Store initialized")
	return successResult("store initialized")
}

// storeUpsertEntity inserts or updates an entity.
// Args: [entityJSON string]
func storeUpsertEntity(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("storeUpsertEntity requires 1 arg: entityJSON")
	}
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	var entity store.Entity
	if err := json.Unmarshal([]byte(args[0].String()), &entity); err != nil {
		return errorResult("invalid entity json: " + err.Error())
	}

	if err := sqlStore.UpsertEntity(&entity); err != nil {
		return errorResult("upsert failed: " + err.Error())
	}

	return successResult("upserted " + entity.ID)
}

// storeGetEntity retrieves an entity by ID.
// Args: [id string]
// Returns: Entity JSON or null
func storeGetEntity(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("storeGetEntity requires 1 arg: id")
	}
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	entity, err := sqlStore.GetEntity(args[0].String())
	if err != nil {
		return errorResult("get failed: " + err.Error())
	}
	if entity == nil {
		return "null"
	}

	bytes, _ := json.Marshal(entity)
	return string(bytes)
}

// storeGetEntityByName finds an entity by name (case-insensitive).
// Args: [name string]
// Returns: Entity JSON or null
func storeGetEntityByName(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("storeGetEntityByName requires 1 arg: name")
	}
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	entity, err := sqlStore.GetEntityByName(args[0].String())
	if err != nil {
		return errorResult("get failed: " + err.Error())
	}
	if entity == nil {
		return "null"
	}

	bytes, _ := json.Marshal(entity)
	return string(bytes)
}

// storeDeleteEntity deletes an entity by ID.
// Args: [id string]
func storeDeleteEntity(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("storeDeleteEntity requires 1 arg: id")
	}
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	if err := sqlStore.DeleteEntity(args[0].String()); err != nil {
		return errorResult("delete failed: " + err.Error())
	}

	return successResult("deleted")
}

// storeListEntities returns all entities, optionally filtered by type.
// Args: [type string (optional)]
// Returns: JSON array of entities
func storeListEntities(this js.Value, args []js.Value) interface{} {
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	var typ string
	if len(args) > 0 && args[0].String() != "" && args[0].String() != "null" {
		typ = args[0].String()
	}

	entities, err := sqlStore.ListEntities(typ)
	if err != nil {
		return errorResult("list failed: " + err.Error())
	}

	bytes, _ := json.Marshal(entities)
	return string(bytes)
}

// storeLoadEntities pushes the persisted entity set into every open highlight
// session. This is the bridge between the store and the live engine.
// Args: []
func storeLoadEntities(this js.Value, args []js.Value) interface{} {
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	snaps, err := sqlStore.EntitySnapshots()
	if err != nil {
		return errorResult("load failed: " + err.Error())
	}

	entitySnapshot = snaps
	for id, c := range controllers {
		if err := c.SetEntities(snaps); err != nil {
			return errorResult("set entities for " + id + ": " + err.Error())
		}
	}

	fmt.Printf("[GoQuill] ✅ Loaded %d entities from store\n", len(snaps))
	return successResult(fmt.Sprintf("loaded %d entities", len(snaps)))
}

// storeUpsertDocument inserts or updates a persisted document.
// Args: [docJSON string]
func storeUpsertDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("storeUpsertDocument requires 1 arg: docJSON")
	}
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	var doc store.Document
	if err := json.Unmarshal([]byte(args[0].String()), &doc); err != nil {
		return errorResult("invalid document json: " + err.Error())
	}

	if err := sqlStore.UpsertDocument(&doc); err != nil {
		return errorResult("upsert failed: " + err.Error())
	}

	return successResult("upserted " + doc.ID)
}

// storeGetDocument retrieves a persisted document by ID.
// Args: [id string]
// Returns: Document JSON or null
func storeGetDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("storeGetDocument requires 1 arg: id")
	}
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	doc, err := sqlStore.GetDocument(args[0].String())
	if err != nil {
		return errorResult("get failed: " + err.Error())
	}
	if doc == nil {
		return "null"
	}

	bytes, _ := json.Marshal(doc)
	return string(bytes)
}

// storeDeleteDocument deletes a persisted document and its ignore list.
// Args: [id string]
func storeDeleteDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("storeDeleteDocument requires 1 arg: id")
	}
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	if err := sqlStore.DeleteDocument(args[0].String()); err != nil {
		return errorResult("delete failed: " + err.Error())
	}

	return successResult("deleted")
}

// storeListDocuments returns all persisted documents.
// Args: []
// Returns: JSON array of documents
func storeListDocuments(this js.Value, args []js.Value) interface{} {
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	list, err := sqlStore.ListDocuments()
	if err != nil {
		return errorResult("list failed: " + err.Error())
	}

	bytes, _ := json.Marshal(list)
	return string(bytes)
}

// storeSetIgnored replaces a document's persisted ignore list.
// Args: [docID string, namesJSON string]
func storeSetIgnored(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("storeSetIgnored requires 2 args: docID, namesJSON")
	}
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	var names []string
	if err := json.Unmarshal([]byte(args[1].String()), &names); err != nil {
		return errorResult("invalid names json: " + err.Error())
	}

	if err := sqlStore.SetIgnored(args[0].String(), names); err != nil {
		return errorResult("set failed: " + err.Error())
	}

	return successResult("ok")
}

// storeGetIgnored returns a document's persisted ignore list.
// Args: [docID string]
// Returns: JSON array of names
func storeGetIgnored(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("storeGetIgnored requires 1 arg: docID")
	}
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	names, err := sqlStore.GetIgnored(args[0].String())
	if err != nil {
		return errorResult("get failed: " + err.Error())
	}
	if names == nil {
		return "[]"
	}

	bytes, _ := json.Marshal(names)
	return string(bytes)
}

// =============================================================================
// Store Export/Import (OPFS Sync)
// =============================================================================

// storeExport serializes the store to a Uint8Array.
// Args: []
// Returns: Uint8Array of database bytes (for OPFS persistence)
func storeExport(this js.Value, args []js.Value) interface{} {
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	data, err := sqlStore.Export()
	if err != nil {
		return errorResult("export failed: " + err.Error())
	}

	jsArray := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(jsArray, data)

	fmt.Printf("[GoQuill] ✅ Exported %d bytes\n", len(data))
	return jsArray
}

// storeImport restores the store from a Uint8Array.
// Args: [data Uint8Array]
func storeImport(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("storeImport requires 1 arg: data (Uint8Array)")
	}
	if sqlStore == nil {
		return errorResult("store not initialized")
	}

	jsArray := args[0]
	length := jsArray.Get("length").Int()
	data := make([]byte, length)
	js.CopyBytesToGo(data, jsArray)

	if err := sqlStore.Import(data); err != nil {
		return errorResult("import failed: " + err.Error())
	}

	fmt.Printf("[GoQuill] ✅ Imported %d bytes\n", length)
	return successResult(fmt.Sprintf("imported %d bytes", length))
}

// Helper: Create error result
func errorResult(msg string) interface{} {
	result := map[string]interface{}{
		"error": msg,
	}
	jsonBytes, _ := json.Marshal(result)
	return string(jsonBytes)
}

// Helper: Create success result
func successResult(msg string) interface{} {
	result := map[string]interface{}{
		"success": msg,
	}
	jsonBytes, _ := json.Marshal(result)
	return string(jsonBytes)
}
