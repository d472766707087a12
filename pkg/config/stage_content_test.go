package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStageOrder = []string{
	"intro", "management", "infrastructure", "culture", "bugs", "compensation", "final",
}

type stageName string

func (s stageName) String() string { return string(s) }

func TestLoadContentTable_Embedded(t *testing.T) {
	initEmbeddedFromRepo(t)

	table, err := LoadContentTable("", testStageOrder)
	require.NoError(t, err)
	assert.Len(t, table.Stages, len(testStageOrder))

	intro, ok := table.For(stageName("intro"))
	require.True(t, ok)
	assert.Equal(t, "RESIGNATION SIMULATOR", intro.Title)
	assert.Equal(t, LayoutSplash, intro.Layout)

	mgmt, _ := table.For(stageName("management"))
	assert.Equal(t, LayoutTerminal, mgmt.Layout)
	assert.Len(t, mgmt.Items, 8)
	assert.InDelta(t, 0.2, mgmt.ItemDelay(1), 1e-9)

	infra, _ := table.For(stageName("infrastructure"))
	require.NotNil(t, infra.Items[0].Percent)
	assert.Equal(t, 10, *infra.Items[0].Percent)
	assert.Nil(t, infra.Items[2].Percent)
	assert.Equal(t, SeverityDead, infra.Items[2].Severity)

	comp, _ := table.For(stageName("compensation"))
	require.Len(t, comp.Blocks, 3)
	assert.Equal(t, []float64{0, 0.5, 1.0}, []float64{comp.Blocks[0].Delay, comp.Blocks[1].Delay, comp.Blocks[2].Delay})
	assert.Contains(t, comp.Blocks[0].Text, "SELECT * FROM employee_compensation")

	final, _ := table.For(stageName("final"))
	assert.Equal(t, LayoutReport, final.Layout)
	assert.Len(t, final.Items, 7)
	assert.Len(t, final.Header, 3)
	require.Len(t, final.Blocks, 2)
	assert.Equal(t, 1.5, final.Blocks[0].Delay)
	assert.Equal(t, 2.0, final.Blocks[1].Delay)
}

func TestContentTable_Validate(t *testing.T) {
	minimal := func() *ContentTable {
		table := &ContentTable{Stages: map[string]StageContent{}}
		for _, name := range testStageOrder {
			table.Stages[name] = StageContent{Title: name, Layout: LayoutList}
		}
		return table
	}

	require.NoError(t, minimal().Validate(testStageOrder))

	t.Run("missing stage", func(t *testing.T) {
		table := minimal()
		delete(table.Stages, "bugs")
		err := table.Validate(testStageOrder)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `stage "bugs": missing content`)
	})

	t.Run("unknown stage", func(t *testing.T) {
		table := minimal()
		table.Stages["epilogue"] = StageContent{Title: "x", Layout: LayoutList}
		err := table.Validate(testStageOrder)
		assert.ErrorIs(t, err, ErrUnknownStageContent)
	})

	t.Run("bad layout", func(t *testing.T) {
		table := minimal()
		table.Stages["culture"] = StageContent{Title: "x", Layout: "carousel"}
		err := table.Validate(testStageOrder)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown layout")
	})

	t.Run("bad percent", func(t *testing.T) {
		table := minimal()
		p := 140
		table.Stages["infrastructure"] = StageContent{
			Title: "x", Layout: LayoutBars,
			Items: []ContentItem{{Label: "Stability", Percent: &p}},
		}
		err := table.Validate(testStageOrder)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "percent")
	})

	t.Run("bad severity", func(t *testing.T) {
		table := minimal()
		table.Stages["final"] = StageContent{
			Title: "x", Layout: LayoutReport,
			Blocks: []ContentBlock{{Text: "bye", Severity: "fatal"}},
		}
		err := table.Validate(testStageOrder)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown severity")
	})
}

func TestContentTable_ForNil(t *testing.T) {
	var table *ContentTable
	_, ok := table.For(stageName("intro"))
	assert.False(t, ok)
}

func TestParseContentTable_BadYAML(t *testing.T) {
	_, err := ParseContentTable([]byte("stages: ["), testStageOrder)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse stage content")
}
