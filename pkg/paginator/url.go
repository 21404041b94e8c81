package paginator

import (
	"net/url"
	"strconv"
	"strings"
)

// AppendParameterToURL appends name=value to rawURL, picking the separator from its shape:
//   - ends with '?', '&' or ';': no separator
//   - already contains '?': '&'
//   - otherwise: '?'
//
// Name and value are form-encoded (space becomes '+'). Existing parameters with the
// same name are left in place, so repeated calls produce duplicates.
func AppendParameterToURL(name, value, rawURL string) string {
	param := url.QueryEscape(name) + "=" + url.QueryEscape(value)

	if rawURL != "" {
		switch rawURL[len(rawURL)-1] {
		case '?', '&', ';':
			return rawURL + param
		}
	}
	if strings.Contains(rawURL, "?") {
		return rawURL + "&" + param
	}
	return rawURL + "?" + param
}

// PageURL returns the link to page, or false when page is out of range.
func (p *Paginator) PageURL(page int) (string, bool) {
	if !p.IsValidPage(page) {
		return "", false
	}
	return p.urlFor(page), true
}

// NextURL returns the link to the following page. Like PageURL it only links
// to pages within range.
func (p *Paginator) NextURL() (string, bool) {
	next, ok := p.NextPage()
	if !ok {
		return "", false
	}
	return p.PageURL(next)
}

// PreviousURL returns the link to the preceding page, if it is within range.
func (p *Paginator) PreviousURL() (string, bool) {
	prev, ok := p.PreviousPage()
	if !ok {
		return "", false
	}
	return p.PageURL(prev)
}

func (p *Paginator) urlFor(page int) string {
	return AppendParameterToURL(p.pageParameter, strconv.Itoa(page), p.baseURL)
}
