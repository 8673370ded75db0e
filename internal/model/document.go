package model

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoRootElement is returned when a document contains no XML element at all.
var ErrNoRootElement = errors.New("document has no root element")

// pathElement and adapterElement mirror the <path><adapter/></path> block
// nested inside a recorded action.
type pathElement struct {
	Adapters []adapterElement `xml:"adapter"`
}

type adapterElement struct {
	ID    string `xml:"id,attr"`
	Role  string `xml:"role,attr"`
	Title string `xml:"title,attr"`
}

type actionElement struct {
	Paths []pathElement `xml:"path"`
}

// walkElements calls fn for every start element in document order. fn may
// consume the element with DecodeElement; its descendants are then not visited.
func walkElements(data []byte, fn func(d *xml.Decoder, start xml.StartElement) error) error {
	d := xml.NewDecoder(bytes.NewReader(data))
	sawElement := false
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if err := fn(d, start); err != nil {
			return err
		}
	}
	if !sawElement {
		return ErrNoRootElement
	}
	return nil
}

func attributesOf(start xml.StartElement) Attributes {
	attrs := make(Attributes, 0, len(start.Attr))
	for _, a := range start.Attr {
		attrs = append(attrs, Attribute{Name: a.Name.Local, Value: a.Value})
	}
	return attrs
}

func isElement(start xml.StartElement, name string) bool {
	return strings.EqualFold(start.Name.Local, name)
}

// ParseSuite returns the test cases a suite document references, in
// document order. Only <test type="testcase"> elements count.
func ParseSuite(data []byte) ([]TestCase, error) {
	var cases []TestCase
	err := walkElements(data, func(_ *xml.Decoder, start xml.StartElement) error {
		if !isElement(start, "test") {
			return nil
		}
		attrs := attributesOf(start)
		if !strings.EqualFold(attrs.Get("type"), "testcase") {
			return nil
		}
		cases = append(cases, TestCase{
			Name: attrs.Get("name"),
			Path: attrs.Get("path"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	return cases, nil
}

// ParseSteps returns the activities and validation rules of a step
// definition document, interleaved in document order.
func ParseSteps(data []byte) ([]Record, error) {
	var records []Record
	err := walkElements(data, func(_ *xml.Decoder, start xml.StartElement) error {
		var domain string
		switch {
		case isElement(start, DomainActivity):
			domain = DomainActivity
		case isElement(start, DomainValidation):
			domain = DomainValidation
		default:
			return nil
		}
		attrs := attributesOf(start)
		records = append(records, Record{
			Domain: domain,
			Type:   attrs.Get("type"),
			Attrs:  attrs.Without("type"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse steps: %w", err)
	}
	return records, nil
}

// ParseRecording returns the recorded actions of a recording document in
// document order. Only the first <path> of an action is used.
func ParseRecording(data []byte) ([]Record, error) {
	var records []Record
	err := walkElements(data, func(d *xml.Decoder, start xml.StartElement) error {
		if !isElement(start, DomainAction) {
			return nil
		}
		attrs := attributesOf(start)
		var el actionElement
		if err := d.DecodeElement(&el, &start); err != nil {
			return err
		}
		rec := Record{
			Domain: DomainAction,
			Type:   attrs.Get("type"),
			Attrs:  attrs.Without("type"),
		}
		if len(el.Paths) > 0 {
			path := &ElementPath{}
			for _, a := range el.Paths[0].Adapters {
				path.Adapters = append(path.Adapters, Adapter{ID: a.ID, Role: a.Role, Title: a.Title})
			}
			rec.Path = path
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse recording: %w", err)
	}
	return records, nil
}
