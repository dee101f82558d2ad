package content

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileDoc(t *testing.T, c *Collection) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(Compile(c)))
	require.NoError(t, err)
	return doc
}

func single(typ Type, body string) *Collection {
	return &Collection{Items: []Block{{ID: 1, Type: typ, Content: body}}}
}

func TestCompile_SimpleTypes(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeParagraph, "<p>text</p>"},
		{TypeHeading2, "<h2>text</h2>"},
		{TypeHeading3, "<h3>text</h3>"},
		{TypeBold, "<strong>text</strong>"},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, Compile(single(tt.typ, "text")))
		})
	}
}

func TestCompile_ContentIsVerbatim(t *testing.T) {
	out := Compile(single(TypeParagraph, `a <em>b</em> & "c"`))
	assert.Equal(t, `<p>a <em>b</em> & "c"</p>`, out)
}

func TestCompile_Hyperlink(t *testing.T) {
	doc := compileDoc(t, single(TypeLink, "x|https://e.com|Click"))

	a := doc.Find("a.in-content")
	require.Equal(t, 1, a.Length())
	href, ok := a.Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "https://e.com", href)
	assert.Equal(t, "Click", a.Text())
}

func TestCompile_HyperlinkWrongDelimiterCount(t *testing.T) {
	for _, body := range []string{"x|https://e.com", "https://e.com", "x|https://e.com|Click|extra"} {
		assert.Empty(t, Compile(single(TypeLink, body)), body)
	}
}

func TestCompile_DefinitionList(t *testing.T) {
	doc := compileDoc(t, single(TypeDefinitionList, "cat|animal*dog"))

	ul := doc.Find("ul.word-list")
	require.Equal(t, 1, ul.Length())
	li := ul.Find("li")
	require.Equal(t, 1, li.Length())
	assert.Equal(t, "cat - animal", li.Text())
	assert.Equal(t, "animal", li.Find("span.meaning").Text())
}

func TestCompile_DefinitionListTrimsAndSkipsEmpty(t *testing.T) {
	out := Compile(single(TypeDefinitionList, " apple | elma **pear|armut*a|b|c"))
	assert.Equal(t,
		`<ul class="word-list"><li>apple - <span class="meaning">elma</span></li>`+"\n"+
			`<li>pear - <span class="meaning">armut</span></li>`+"\n</ul>",
		out)
}

func TestCompile_DefinitionListNoValidEntries(t *testing.T) {
	assert.Equal(t, `<ul class="word-list"></ul>`, Compile(single(TypeDefinitionList, "nothing*here")))
	assert.Equal(t, `<ul class="word-list"></ul>`, Compile(single(TypeDefinitionList, "")))
}

func TestCompile_UnknownTypeSkipped(t *testing.T) {
	c := &Collection{Items: []Block{
		{ID: 1, Type: "video", Content: "clip.mp4"},
		{ID: 2, Type: TypeParagraph, Content: "after"},
	}}
	assert.Equal(t, "<p>after</p>", Compile(c))
}

func TestCompile_AscendingIDOrder(t *testing.T) {
	c := &Collection{Items: []Block{
		{ID: 5, Type: TypeParagraph, Content: "five"},
		{ID: 1, Type: TypeHeading2, Content: "one"},
		{ID: 3, Type: TypeBold, Content: "three"},
	}}
	assert.Equal(t, "<h2>one</h2><strong>three</strong><p>five</p>", Compile(c))
	assert.Equal(t, 5, c.Items[0].ID, "compile must not reorder its input")
}

func TestCompile_Deterministic(t *testing.T) {
	c := New()
	c.Upsert(nil, TypeHeading2, "Başlık")
	c.Upsert(nil, TypeParagraph, "Paragraf")
	c.Upsert(nil, TypeDefinitionList, "a|b*c|d")
	c.Upsert(nil, TypeLink, "x|https://e.com|Click")

	first := Compile(c)
	second := Compile(c)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestCompile_Empty(t *testing.T) {
	assert.Empty(t, Compile(nil))
	assert.Empty(t, Compile(New()))
}
