package otquery

import (
	"golang.org/x/text/language"

	"github.com/npillmayer/fontmeta/ot"
)

// Language naming for name records. Records with a language ID < 0x8000 use
// platform-specific predefined codes: Microsoft LCIDs for platform 3,
// Macintosh language codes for platform 1. Records with a language ID
// ≥ 0x8000 refer to the language-tag records of a format-1 name table.
//
// The platform tables below are static excerpts of
// https://learn.microsoft.com/en-us/typography/opentype/spec/name;
// codes without an entry resolve to "Unknown".

// LanguageName resolves the language of a name record to a human-readable
// descriptor.
//
// Platform 0 (Unicode) predefines no language codes, so its records resolve
// to "unspecified". A language ID ≥ 0x8000 is resolved via the name table's
// language-tag records; a missing or undecodable tag record yields
// "unspecified" as well. Well-formed BCP-47 tags are canonicalized.
func LanguageName(names *ot.NameTable, rec ot.NameRecord) string {
	if rec.Language >= 0x8000 {
		tag, ok := names.LanguageTag(rec.Language)
		if !ok {
			return "unspecified"
		}
		if parsed, err := language.Parse(tag); err == nil {
			return parsed.String()
		}
		tracer().Debugf("name record language tag %q is not a well-formed BCP-47 tag", tag)
		return tag
	}
	switch rec.Platform {
	case ot.PlatformWindows:
		if name, ok := windowsLanguages[rec.Language]; ok {
			return name
		}
		return "Unknown"
	case ot.PlatformMacintosh:
		if name, ok := macLanguages[rec.Language]; ok {
			return name
		}
		return "Unknown"
	}
	return "unspecified"
}

// windowsLanguages maps Microsoft language IDs (LCIDs) to language names.
var windowsLanguages = map[uint16]string{
	0x0401: "Arabic (Saudi Arabia)",
	0x0402: "Bulgarian (Bulgaria)",
	0x0403: "Catalan (Catalan)",
	0x0404: "Chinese (Taiwan)",
	0x0405: "Czech (Czech Republic)",
	0x0406: "Danish (Denmark)",
	0x0407: "German (Germany)",
	0x0408: "Greek (Greece)",
	0x0409: "English (United States)",
	0x040A: "Spanish (Spain, Traditional Sort)",
	0x040B: "Finnish (Finland)",
	0x040C: "French (France)",
	0x040D: "Hebrew (Israel)",
	0x040E: "Hungarian (Hungary)",
	0x040F: "Icelandic (Iceland)",
	0x0410: "Italian (Italy)",
	0x0411: "Japanese (Japan)",
	0x0412: "Korean (Korea)",
	0x0413: "Dutch (Netherlands)",
	0x0414: "Norwegian (Bokmal, Norway)",
	0x0415: "Polish (Poland)",
	0x0416: "Portuguese (Brazil)",
	0x0417: "Romansh (Switzerland)",
	0x0418: "Romanian (Romania)",
	0x0419: "Russian (Russia)",
	0x041A: "Croatian (Croatia)",
	0x041B: "Slovak (Slovakia)",
	0x041C: "Albanian (Albania)",
	0x041D: "Swedish (Sweden)",
	0x041E: "Thai (Thailand)",
	0x041F: "Turkish (Turkey)",
	0x0420: "Urdu (Islamic Republic of Pakistan)",
	0x0421: "Indonesian (Indonesia)",
	0x0422: "Ukrainian (Ukraine)",
	0x0423: "Belarusian (Belarus)",
	0x0424: "Slovenian (Slovenia)",
	0x0425: "Estonian (Estonia)",
	0x0426: "Latvian (Latvia)",
	0x0427: "Lithuanian (Lithuania)",
	0x0429: "Farsi (Iran)",
	0x042A: "Vietnamese (Vietnam)",
	0x042B: "Armenian (Armenia)",
	0x042D: "Basque (Basque)",
	0x042F: "Macedonian (North Macedonia)",
	0x0436: "Afrikaans (South Africa)",
	0x0437: "Georgian (Georgia)",
	0x0438: "Faroese (Faroe Islands)",
	0x0439: "Hindi (India)",
	0x043A: "Maltese (Malta)",
	0x043E: "Malay (Malaysia)",
	0x0441: "Kiswahili (Kenya)",
	0x0445: "Bengali (India)",
	0x0447: "Gujarati (India)",
	0x0449: "Tamil (India)",
	0x044A: "Telugu (India)",
	0x044B: "Kannada (India)",
	0x044C: "Malayalam (India)",
	0x044E: "Marathi (India)",
	0x0452: "Welsh (United Kingdom)",
	0x0456: "Galician (Galician)",
	0x045A: "Syriac (Syria)",
	0x0463: "Pashto (Afghanistan)",
	0x0464: "Filipino (Philippines)",
	0x0804: "Chinese (People's Republic of China)",
	0x0807: "German (Switzerland)",
	0x0809: "English (United Kingdom)",
	0x080A: "Spanish (Mexico)",
	0x080C: "French (Belgium)",
	0x0810: "Italian (Switzerland)",
	0x0813: "Dutch (Belgium)",
	0x0814: "Norwegian (Nynorsk, Norway)",
	0x0816: "Portuguese (Portugal)",
	0x081A: "Serbian (Latin, Serbia)",
	0x0C04: "Chinese (Hong Kong S.A.R.)",
	0x0C07: "German (Austria)",
	0x0C09: "English (Australia)",
	0x0C0A: "Spanish (Spain, Modern Sort)",
	0x0C0C: "French (Canada)",
	0x0C1A: "Serbian (Cyrillic, Serbia)",
	0x1004: "Chinese (Singapore)",
	0x1009: "English (Canada)",
	0x100C: "French (Switzerland)",
	0x1404: "Chinese (Macao S.A.R.)",
	0x1409: "English (New Zealand)",
	0x1809: "English (Ireland)",
	0x1C09: "English (South Africa)",
	0x2009: "English (Jamaica)",
	0x2409: "English (Caribbean)",
	0x2809: "English (Belize)",
	0x2C09: "English (Trinidad and Tobago)",
	0x3009: "English (Zimbabwe)",
	0x3409: "English (Republic of the Philippines)",
	0x4009: "English (India)",
	0x4409: "English (Malaysia)",
	0x4809: "English (Singapore)",
}

// macLanguages maps Macintosh language codes to language names.
var macLanguages = map[uint16]string{
	0:  "English",
	1:  "French",
	2:  "German",
	3:  "Italian",
	4:  "Dutch",
	5:  "Swedish",
	6:  "Spanish",
	7:  "Danish",
	8:  "Portuguese",
	9:  "Norwegian",
	10: "Hebrew",
	11: "Japanese",
	12: "Arabic",
	13: "Finnish",
	14: "Greek",
	15: "Icelandic",
	16: "Maltese",
	17: "Turkish",
	18: "Croatian",
	19: "Chinese (Traditional)",
	20: "Urdu",
	21: "Hindi",
	22: "Thai",
	23: "Korean",
	24: "Lithuanian",
	25: "Polish",
	26: "Hungarian",
	27: "Estonian",
	28: "Latvian",
	29: "Sami",
	30: "Faroese",
	31: "Farsi/Persian",
	32: "Russian",
	33: "Chinese (Simplified)",
	34: "Flemish",
	35: "Irish Gaelic",
	36: "Albanian",
	37: "Romanian",
	38: "Czech",
	39: "Slovak",
	40: "Slovenian",
	41: "Yiddish",
	42: "Serbian",
	43: "Macedonian",
	44: "Bulgarian",
	45: "Ukrainian",
	46: "Byelorussian",
	47: "Uzbek",
	48: "Kazakh",
	49: "Azerbaijani (Cyrillic script)",
	50: "Azerbaijani (Arabic script)",
	51: "Armenian",
	52: "Georgian",
	53: "Moldavian",
	54: "Kirghiz",
	55: "Tajiki",
	56: "Turkmen",
	57: "Mongolian (Mongolian script)",
	58: "Mongolian (Cyrillic script)",
	59: "Pashto",
	60: "Kurdish",
	61: "Kashmiri",
	62: "Sindhi",
	63: "Tibetan",
	64: "Nepali",
	65: "Sanskrit",
	66: "Marathi",
	67: "Bengali",
	68: "Assamese",
	69: "Gujarati",
	70: "Punjabi",
}
