// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

// ContentKind is the closed set of content payload kinds. Each element
// [Type] maps to exactly one kind via [DefaultContent]; pure containers
// have [ContentNone].
type ContentKind int32

const (
	// ContentNone means the element carries no content payload.
	ContentNone ContentKind = iota

	// ContentText is a plain text payload.
	ContentText

	// ContentImage is an image source with alt text.
	ContentImage

	// ContentVideo is a video source.
	ContentVideo

	// ContentLink is a hyperlink target.
	ContentLink

	// ContentIcon is an icon identifier.
	ContentIcon

	// ContentField is a form field specification.
	ContentField

	// ContentEmbed is an embedded external document.
	ContentEmbed

	// ContentCode is a code block with a language tag.
	ContentCode

	// ContentMarkup is raw HTML markup.
	ContentMarkup

	// ContentComponent is a reference to a reusable component.
	ContentComponent
)

var contentKindNames = map[ContentKind]string{
	ContentNone:      "none",
	ContentText:      "text",
	ContentImage:     "image",
	ContentVideo:     "video",
	ContentLink:      "link",
	ContentIcon:      "icon",
	ContentField:     "field",
	ContentEmbed:     "embed",
	ContentCode:      "code",
	ContentMarkup:    "markup",
	ContentComponent: "component",
}

var contentKindValues = enumValues(contentKindNames)

func (k ContentKind) String() string { return contentKindNames[k] }

func (k ContentKind) MarshalText() ([]byte, error) {
	return marshalEnum(k, contentKindNames, "content kind")
}

func (k *ContentKind) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, contentKindValues, k, "content kind")
}

// ImageSource is the payload for image content.
type ImageSource struct {
	Source string `json:"source"`
	Alt    string `json:"alt,omitempty"`
}

// VideoSource is the payload for video content.
type VideoSource struct {
	Source   string `json:"source"`
	Poster   string `json:"poster,omitempty"`
	Autoplay bool   `json:"autoplay,omitempty"`
	Loop     bool   `json:"loop,omitempty"`
	Muted    bool   `json:"muted,omitempty"`
}

// LinkTarget is the payload for link content.
type LinkTarget struct {
	Href   string `json:"href"`
	NewTab bool   `json:"newTab,omitempty"`
}

// FieldSpec is the payload for form field content.
type FieldSpec struct {
	Name        string `json:"name"`
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	FieldType   string `json:"fieldType,omitempty"` // text, email, number, ...
	Required    bool   `json:"required,omitempty"`
}

// CodeBlock is the payload for code content.
type CodeBlock struct {
	Source   string `json:"source"`
	Language string `json:"language,omitempty"`
}

// Content is the type-tagged content payload of an element. Exactly the
// payload field matching Kind is meaningful; the rest are nil/empty.
// A nil *Content means the element is a pure container.
type Content struct {
	Kind ContentKind `json:"kind"`

	Text      string       `json:"text,omitempty"`
	Image     *ImageSource `json:"image,omitempty"`
	Video     *VideoSource `json:"video,omitempty"`
	Link      *LinkTarget  `json:"link,omitempty"`
	Icon      string       `json:"icon,omitempty"`
	Field     *FieldSpec   `json:"field,omitempty"`
	Embed     string       `json:"embed,omitempty"`
	Code      *CodeBlock   `json:"code,omitempty"`
	Markup    string       `json:"markup,omitempty"`
	Component string       `json:"component,omitempty"`
}

// NewTextContent returns text content with the given string.
func NewTextContent(text string) *Content {
	return &Content{Kind: ContentText, Text: text}
}

// DefaultContent returns the default content payload for the given
// element type, or nil for pure containers. Every element type is
// enumerated explicitly so a new type is a compile-time gap here,
// not a silent runtime fallback.
func DefaultContent(t Type) *Content {
	switch t {
	case Frame, FormType, Slot, Divider:
		return nil
	case TextType:
		return &Content{Kind: ContentText}
	case ImageType:
		return &Content{Kind: ContentImage, Image: &ImageSource{}}
	case VideoType:
		return &Content{Kind: ContentVideo, Video: &VideoSource{}}
	case ComponentInstance:
		return &Content{Kind: ContentComponent}
	case InputType:
		return &Content{Kind: ContentField, Field: &FieldSpec{FieldType: "text"}}
	case ButtonType:
		return &Content{Kind: ContentText}
	case LinkType:
		return &Content{Kind: ContentLink, Link: &LinkTarget{}}
	case IconType:
		return &Content{Kind: ContentIcon}
	case EmbedType:
		return &Content{Kind: ContentEmbed}
	case CodeType:
		return &Content{Kind: ContentCode, Code: &CodeBlock{}}
	case RawMarkup:
		return &Content{Kind: ContentMarkup}
	}
	return nil
}

// KindForType returns the content kind that elements of the given
// type carry.
func KindForType(t Type) ContentKind {
	c := DefaultContent(t)
	if c == nil {
		return ContentNone
	}
	return c.Kind
}
