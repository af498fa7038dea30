// Package markup renders HTML fragments for form helpers: attribute lists,
// labels, inputs, links, images, containers and Bootstrap style translation
// tabs. Attribute values and text content are always escaped. Attributes are
// written in sorted key order so output is stable.
package markup
