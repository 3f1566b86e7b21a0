package xpath

import (
  "bytes"
  "context"
  "fmt"
  "io"

  "github.com/antchfx/htmlquery"
  "github.com/go-resty/resty/v2"
  "github.com/pricewise/pricewatch/pkg/stringer"
  "golang.org/x/net/html"
)

type HtmlDocument struct {
  Node *html.Node
  Url  string
}

type Dependencies struct {
  Client *resty.Client
}

type Parser struct {
  deps Dependencies
}

func NewParser(deps Dependencies) *Parser {
  return &Parser{
    deps: deps,
  }
}

func (p *Parser) GetHtmlDoc(ctx context.Context, url string) (*HtmlDocument, error) {
  resp, err := p.deps.Client.R().SetContext(ctx).Get(url)
  if err != nil {
    return nil, fmt.Errorf("p.deps.Client.R().Get: %w", err)
  }

  doc, err := ParseHtml(bytes.NewReader(resp.Body()), url)
  if err != nil {
    return nil, fmt.Errorf("xpath.ParseHtml: %w", err)
  }

  return doc, nil
}

func ParseHtml(r io.Reader, url string) (*HtmlDocument, error) {
  node, err := html.Parse(r)
  if err != nil {
    return nil, fmt.Errorf("html.Parse: %w", err)
  }

  return &HtmlDocument{
    Node: node,
    Url:  url,
  }, nil
}

func GetFirstElement(doc *HtmlDocument, xpath string) *html.Node {
  for _, node := range htmlquery.Find(doc.Node, xpath) {
    if node != nil {
      return node
    }
  }
  return nil
}

func GetAttribute(node *html.Node, attrKey string) (string, bool) {
  if node == nil {
    return "", false
  }

  for _, attr := range node.Attr {
    if attr.Key != attrKey {
      continue
    }
    return stringer.StripTags(attr.Val), true
  }

  return "", false
}

// GetInnerText flattens the node subtree to its text content.
func GetInnerText(node *html.Node) (string, bool) {
  if node == nil {
    return "", false
  }

  content := stringer.SanitizeString(htmlquery.InnerText(node))

  return content, !stringer.IsEmptyStr(content)
}
