// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// project_form.go holds the project editor's list manipulation logic and
// the mapping between the indexed form fields and the typed block/link
// lists. The list operations are pure so the HTMX endpoints stay thin.
package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"sisumaja/internal/models"
)

// --- pure list operations ---

// appendBlock returns the list with a fresh empty text block at the end.
func appendBlock(blocks []models.ContentBlock) []models.ContentBlock {
	return append(blocks, models.ContentBlock{
		ID:     uuid.NewString(),
		Kind:   models.BlockText,
		Layout: models.LayoutLeft,
	})
}

// removeBlockByID returns the list without the block carrying id. Unknown
// ids leave the list unchanged.
func removeBlockByID(blocks []models.ContentBlock, id string) []models.ContentBlock {
	out := blocks[:0]
	for _, b := range blocks {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

// swapBlocks swaps the block at index i with its neighbor in direction
// dir (-1 up, +1 down). Out-of-range swaps are no-ops, moving the first
// block up or the last block down changes nothing.
func swapBlocks(blocks []models.ContentBlock, i, dir int) []models.ContentBlock {
	j := i + dir
	if i < 0 || i >= len(blocks) || j < 0 || j >= len(blocks) {
		return blocks
	}
	blocks[i], blocks[j] = blocks[j], blocks[i]
	return blocks
}

// appendLink returns the list with a fresh empty link at the end.
func appendLink(links []models.CustomLink) []models.CustomLink {
	return append(links, models.CustomLink{
		ID:   uuid.NewString(),
		Kind: models.LinkOther,
	})
}

// removeLinkByID returns the list without the link carrying id.
func removeLinkByID(links []models.CustomLink, id string) []models.CustomLink {
	out := links[:0]
	for _, l := range links {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}

// swapLinks swaps the link at index i with its neighbor in direction dir.
// Boundary swaps are no-ops.
func swapLinks(links []models.CustomLink, i, dir int) []models.CustomLink {
	j := i + dir
	if i < 0 || i >= len(links) || j < 0 || j >= len(links) {
		return links
	}
	links[i], links[j] = links[j], links[i]
	return links
}

// --- form field mapping ---

// The editor posts its lists as indexed fields: block_id_0, block_kind_0,
// block_title_0 and so on, counting up until the first missing index.
// Carousel URLs and the media gallery are newline-separated textareas.

// parseBlocksForm reads the block list out of posted form values. Invalid
// kinds fall back to text rather than dropping user input mid-edit.
func parseBlocksForm(form url.Values) []models.ContentBlock {
	var blocks []models.ContentBlock
	for i := 0; ; i++ {
		id := form.Get(fmt.Sprintf("block_id_%d", i))
		if id == "" {
			break
		}

		kind := models.BlockKind(form.Get(fmt.Sprintf("block_kind_%d", i)))
		if !kind.Valid() {
			kind = models.BlockText
		}
		layout := models.BlockLayout(form.Get(fmt.Sprintf("block_layout_%d", i)))
		if layout != models.LayoutRight {
			layout = models.LayoutLeft
		}

		blocks = append(blocks, models.ContentBlock{
			ID:           id,
			Kind:         kind,
			Title:        form.Get(fmt.Sprintf("block_title_%d", i)),
			Content:      form.Get(fmt.Sprintf("block_content_%d", i)),
			URL:          form.Get(fmt.Sprintf("block_url_%d", i)),
			ThumbnailURL: form.Get(fmt.Sprintf("block_thumbnail_url_%d", i)),
			URLs:         splitLines(form.Get(fmt.Sprintf("block_urls_%d", i))),
			Layout:       layout,
		})
	}
	return blocks
}

// parseLinksForm reads the link list out of posted form values.
func parseLinksForm(form url.Values) []models.CustomLink {
	var links []models.CustomLink
	for i := 0; ; i++ {
		id := form.Get(fmt.Sprintf("link_id_%d", i))
		if id == "" {
			break
		}

		kind := models.LinkKind(form.Get(fmt.Sprintf("link_kind_%d", i)))
		if !kind.Valid() {
			kind = models.LinkOther
		}

		links = append(links, models.CustomLink{
			ID:    id,
			Kind:  kind,
			Label: form.Get(fmt.Sprintf("link_label_%d", i)),
			URL:   form.Get(fmt.Sprintf("link_url_%d", i)),
		})
	}
	return links
}

// splitLines turns a textarea value into a list of trimmed non-empty lines.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// formIndex parses an index form value, returning -1 for anything invalid
// so list operations treat it as out of range.
func formIndex(form url.Values, key string) int {
	n, err := strconv.Atoi(form.Get(key))
	if err != nil {
		return -1
	}
	return n
}

// --- HTMX fragment endpoints ---

// The project editor manipulates its block and link lists server-side:
// every add/remove/move posts the current form state, applies the
// operation, and swaps in the re-rendered editor fragment.

// BlockAdd appends an empty block and re-renders the block editor.
func (a *Admin) BlockAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	blocks := appendBlock(parseBlocksForm(r.Form))
	a.renderer.Fragment(w, "project_form", "blocks_editor", map[string]any{"Blocks": blocks})
}

// BlockRemove removes the block named by the "remove" field.
func (a *Admin) BlockRemove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	blocks := removeBlockByID(parseBlocksForm(r.Form), r.Form.Get("remove"))
	a.renderer.Fragment(w, "project_form", "blocks_editor", map[string]any{"Blocks": blocks})
}

// BlockMove swaps the block at "index" with a neighbor ("dir" is -1 or 1).
func (a *Admin) BlockMove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	dir := formIndex(r.Form, "dir")
	if dir != 1 {
		dir = -1
	}
	blocks := swapBlocks(parseBlocksForm(r.Form), formIndex(r.Form, "index"), dir)
	a.renderer.Fragment(w, "project_form", "blocks_editor", map[string]any{"Blocks": blocks})
}

// LinkAdd appends an empty link and re-renders the link editor.
func (a *Admin) LinkAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	links := appendLink(parseLinksForm(r.Form))
	a.renderer.Fragment(w, "project_form", "links_editor", map[string]any{"Links": links})
}

// LinkRemove removes the link named by the "remove" field.
func (a *Admin) LinkRemove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	links := removeLinkByID(parseLinksForm(r.Form), r.Form.Get("remove"))
	a.renderer.Fragment(w, "project_form", "links_editor", map[string]any{"Links": links})
}

// LinkMove swaps the link at "index" with a neighbor ("dir" is -1 or 1).
func (a *Admin) LinkMove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	dir := formIndex(r.Form, "dir")
	if dir != 1 {
		dir = -1
	}
	links := swapLinks(parseLinksForm(r.Form), formIndex(r.Form, "index"), dir)
	a.renderer.Fragment(w, "project_form", "links_editor", map[string]any{"Links": links})
}
