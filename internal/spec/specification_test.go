package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s, err := New("users", Override{})
	require.NoError(t, err)

	assert.Equal(t, "users", s.Type())
	assert.Equal(t, DefaultIDField, s.IDField())
	assert.Nil(t, s.EffectiveAttributes())
	assert.Nil(t, s.EffectiveRelationships())
	assert.Nil(t, s.EffectiveIncluded())
	assert.Empty(t, s.Ignored())
	assert.True(t, s.IsIDField("id"))
	assert.False(t, s.IsIDField("_id"))
}

func TestNew_EmptyType(t *testing.T) {
	_, err := New("", Override{})
	require.ErrorIs(t, err, ErrInvalidSpec)

	_, err = Inferred("")
	require.ErrorIs(t, err, ErrInvalidSpec)
}

func TestNew_InvalidNested(t *testing.T) {
	tests := []struct {
		name   string
		nested Nested
	}{
		{name: "nil explicit", nested: Explicit(nil)},
		{name: "empty named", nested: Named("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("users", Override{Nested: map[string]Nested{"profile": tt.nested}})
			require.ErrorIs(t, err, ErrInvalidSpec)
			assert.Contains(t, err.Error(), "profile")
		})
	}
}

func TestEffectiveSets_ExcludeIgnored(t *testing.T) {
	s, err := New("users", Override{
		ID:            "_id",
		Attributes:    NewFields("email", "passwordHash", "username"),
		Relationships: NewFields("profile", "posts"),
		Included:      NewFields("profile", "posts", "posts.comments"),
		Ignored:       NewFields("passwordHash", "posts"),
	})
	require.NoError(t, err)

	assert.Equal(t, "_id", s.IDField())
	assert.Equal(t, Fields{"email", "username"}, s.EffectiveAttributes())
	assert.Equal(t, Fields{"profile"}, s.EffectiveRelationships())
	assert.Equal(t, Fields{"profile"}, s.EffectiveIncluded())
	assert.True(t, s.IsIgnored("posts"))
	assert.False(t, s.IsIgnored("profile"))
}

func TestEffectiveIncluded_ExplicitEmpty(t *testing.T) {
	s, err := New("users", Override{Included: NewFields()})
	require.NoError(t, err)

	included := s.EffectiveIncluded()
	assert.NotNil(t, included)
	assert.Empty(t, included)
}

func TestResolveNested(t *testing.T) {
	profile, err := New("userProfile", Override{ID: "_id"})
	require.NoError(t, err)

	s, err := New("users", Override{
		Nested: map[string]Nested{
			"profile": Explicit(profile),
			"friends": Named("users"),
			"posts":   Inline(Override{Attributes: NewFields("title")}),
			"roles":   Inline(Override{Type: "role"}),
		},
	})
	require.NoError(t, err)

	assert.Same(t, profile, s.ResolveNested("profile"))

	friends := s.ResolveNested("friends")
	require.NotNil(t, friends)
	assert.Equal(t, "users", friends.Type())
	assert.Nil(t, friends.EffectiveAttributes())

	posts := s.ResolveNested("posts")
	require.NotNil(t, posts)
	assert.Equal(t, "posts", posts.Type())
	assert.Equal(t, Fields{"title"}, posts.EffectiveAttributes())

	assert.Equal(t, "role", s.ResolveNested("roles").Type())
	assert.Nil(t, s.ResolveNested("comments"))

	assert.Equal(t, NestedExplicit, s.Nested("posts").Kind())
	assert.Equal(t, NestedNamed, s.Nested("friends").Kind())
	assert.True(t, s.Nested("comments").IsAbsent())
	assert.Equal(t, []string{"friends", "posts", "profile", "roles"}, s.NestedFields())
}

func TestDeepInlineNested(t *testing.T) {
	s, err := New("users", Override{
		Nested: map[string]Nested{
			"posts": Inline(Override{
				Nested: map[string]Nested{"comments": Named("userComments")},
			}),
		},
	})
	require.NoError(t, err)

	posts := s.ResolveNested("posts")
	require.NotNil(t, posts)
	assert.Equal(t, "userComments", posts.ResolveNested("comments").Type())
}

func TestWithIncluded_DoesNotMutate(t *testing.T) {
	s, err := New("users", Override{Included: NewFields("profile")})
	require.NoError(t, err)

	derived := s.WithIncluded(NewFields("posts"))

	assert.Equal(t, Fields{"profile"}, s.EffectiveIncluded())
	assert.Equal(t, Fields{"posts"}, derived.EffectiveIncluded())
	assert.Equal(t, s.Type(), derived.Type())
}

func TestOverride_RoundTrip(t *testing.T) {
	o := Override{
		ID:         "_id",
		Attributes: NewFields("email"),
		Included:   NewFields(),
		Ignored:    NewFields("passwordHash"),
		Nested:     map[string]Nested{"friends": Named("users")},
	}

	s, err := New("users", o)
	require.NoError(t, err)

	back := s.Override()
	assert.Equal(t, "users", back.Type)
	assert.Equal(t, "_id", back.ID)
	assert.Equal(t, Fields{"email"}, back.Attributes)
	assert.Nil(t, back.Relationships)
	assert.Equal(t, Fields{}, back.Included)

	again, err := New(back.Type, back)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestOverride_Merge(t *testing.T) {
	base := Override{
		Attributes: NewFields("email", "username"),
		Ignored:    NewFields("passwordHash"),
		Nested:     map[string]Nested{"friends": Named("users"), "profile": Named("profile")},
	}
	top := Override{
		ID:       "_id",
		Included: NewFields(),
		Nested:   map[string]Nested{"profile": Named("userProfile")},
	}

	merged := base.Merge(top)

	assert.Equal(t, "_id", merged.ID)
	assert.Equal(t, Fields{"email", "username"}, merged.Attributes)
	assert.Equal(t, Fields{}, merged.Included)
	assert.Equal(t, Fields{"passwordHash"}, merged.Ignored)
	assert.Equal(t, "users", merged.Nested["friends"].Name())
	assert.Equal(t, "userProfile", merged.Nested["profile"].Name())

	// base is untouched
	assert.Equal(t, "profile", base.Nested["profile"].Name())
}

func TestNestedKind_String(t *testing.T) {
	assert.Equal(t, "absent", NestedAbsent.String())
	assert.Equal(t, "explicit", NestedExplicit.String())
	assert.Equal(t, "named", NestedNamed.String())
	assert.Equal(t, "inline", NestedInline.String())
	assert.Equal(t, "unknown", NestedKind(42).String())
}
