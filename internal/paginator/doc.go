// Package paginator turns any element marked with data-paginate into a
// self-managing paged view.
//
// A Controller owns one document and maps each marked container to exactly
// one State (registration is idempotent). Every recomputation classifies the
// container's items into available and externally-filtered sets, clamps the
// current page, toggles item visibility for the active window, and rewrites
// the generated controls block (info label plus windowed page buttons).
//
// External features that hide or insert items (search filtering, dynamic
// content) integrate through Refresh; the controller never observes tree
// mutations on its own.
package paginator
