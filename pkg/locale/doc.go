// Package locale holds the ordered set of configured locale codes and the
// rules used to attach and strip locale suffixes on form field names
// ("title" + "sv" -> "title_sv"). Registry order is significant: the first
// locale is the default one and drives the "active" state of translation
// tabs.
package locale
