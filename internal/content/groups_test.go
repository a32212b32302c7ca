package content

import (
	"encoding/json"
	"testing"

	"visualvibe_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedGroups_MarshalPreservesInsertionOrder(t *testing.T) {
	g := NewOrderedGroups[int]()
	g.Add("zebra", 1)
	g.Add("apple", 2)
	g.Add("zebra", 3)
	g.Add("mango", 4)

	out, err := json.Marshal(g)
	require.NoError(t, err)

	// Key order follows first insertion, not alphabetical order.
	assert.Equal(t, `{"zebra":[1,3],"apple":[2],"mango":[4]}`, string(out))
}

func TestOrderedGroups_PreSeededKeysMarshalWhenEmpty(t *testing.T) {
	g := NewOrderedGroups[string]("2D", "3D")

	out, err := json.Marshal(g)
	require.NoError(t, err)

	assert.Equal(t, `{"2D":[],"3D":[]}`, string(out))
}

func TestGroupTeamByCategory(t *testing.T) {
	members := []models.TeamMember{
		{Name: "Aidana", Category: "Design"},
		{Name: "Bek", Category: "Design"},
		{Name: "Chingiz", Category: "Development"},
		{Name: "Dana", Category: "Design"},
	}

	grouped := GroupTeamByCategory(members)

	assert.Equal(t, []string{"Design", "Development"}, grouped.Keys())
	assert.Len(t, grouped.Bucket("Design"), 3)
	assert.Len(t, grouped.Bucket("Development"), 1)

	// Order within a bucket follows the input order.
	design := grouped.Bucket("Design")
	assert.Equal(t, "Aidana", design[0].Name)
	assert.Equal(t, "Bek", design[1].Name)
	assert.Equal(t, "Dana", design[2].Name)
}

func TestGroupGraphicsByType(t *testing.T) {
	items := []models.GraphicDesign{
		{Title: "Poster", DesignType: "2D"},
		{Title: "Render", DesignType: " 3d "},
		{Title: "Sketch", DesignType: "vector"},
		{Title: "Banner", DesignType: "2d"},
	}

	grouped, dropped := GroupGraphicsByType(items)

	// Normalization: trim then uppercase.
	assert.Len(t, grouped.Bucket("2D"), 2)
	assert.Len(t, grouped.Bucket("3D"), 1)
	assert.Equal(t, []string{"Sketch"}, dropped)

	out, err := json.Marshal(grouped)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"2D":`)
	assert.Contains(t, string(out), `"3D":`)
	assert.NotContains(t, string(out), "Sketch")
}

func TestGroupGraphicsByType_EmptyInputKeepsBothTabs(t *testing.T) {
	grouped, dropped := GroupGraphicsByType(nil)

	assert.Empty(t, dropped)
	out, err := json.Marshal(grouped)
	require.NoError(t, err)
	assert.Equal(t, `{"2D":[],"3D":[]}`, string(out))
}
