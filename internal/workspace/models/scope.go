package models

import (
	"strings"

	"talentdeck/pkg/numeric"
)

// Scope values.
const (
	ScopeWorkspace = "workspace"
	ScopeGlobal    = "global"
)

// ScopeTag is the explicit form of the soft workspace tags loosely-coupled
// records embed in their metadata bags. It is parsed once at the repository
// boundary; aggregation code never inspects raw metadata for scoping.
type ScopeTag struct {
	WorkspaceIDs  []int64
	WorkspaceSlug *string
	Scope         string
}

// Matches reports whether a record with this tag belongs to the given
// workspace. Records with global scope (no scoping metadata at all) match
// every workspace.
func (t ScopeTag) Matches(workspaceID int64, slug string) bool {
	if t.Scope == ScopeGlobal {
		return true
	}
	for _, id := range t.WorkspaceIDs {
		if id == workspaceID {
			return true
		}
	}
	if t.WorkspaceSlug != nil && slug != "" && strings.EqualFold(*t.WorkspaceSlug, slug) {
		return true
	}
	return false
}

// Scoped reports whether the tag carries any workspace scoping at all.
func (t ScopeTag) Scoped() bool {
	return t.Scope == ScopeWorkspace
}

// ParseScopeTag extracts a ScopeTag from a metadata bag. Recognized keys:
// workspaceId / headhunterWorkspaceId (single id), workspaceIds (list), and
// workspaceSlug. Records with none of these default to global scope.
func ParseScopeTag(metadata map[string]any) ScopeTag {
	tag := ScopeTag{Scope: ScopeGlobal}
	if metadata == nil {
		return tag
	}

	for _, key := range []string{"workspaceId", "headhunterWorkspaceId"} {
		if raw, ok := metadata[key]; ok {
			if f, ok := numeric.Parse(raw); ok {
				tag.WorkspaceIDs = append(tag.WorkspaceIDs, int64(f))
			}
		}
	}
	if raw, ok := metadata["workspaceIds"]; ok {
		if list, ok := raw.([]any); ok {
			for _, item := range list {
				if f, ok := numeric.Parse(item); ok {
					tag.WorkspaceIDs = append(tag.WorkspaceIDs, int64(f))
				}
			}
		}
	}
	if raw, ok := metadata["workspaceSlug"]; ok {
		if s, ok := raw.(string); ok && strings.TrimSpace(s) != "" {
			slug := strings.TrimSpace(s)
			tag.WorkspaceSlug = &slug
		}
	}

	if len(tag.WorkspaceIDs) > 0 || tag.WorkspaceSlug != nil {
		tag.Scope = ScopeWorkspace
	}
	return tag
}
