package harfbuzz

//#include "shim.h"
import "C"
import (
	"golang.org/x/text/language"
)

// Script is an ISO 15924 script code packed as a Tag. Scripts added in later Unicode versions are
// only recognized by library versions that know about them.
type Script uint32

// ScriptInvalid is the unset script.
const ScriptInvalid Script = 0

const (
	ScriptCommon                Script = 'Z'<<24 | 'y'<<16 | 'y'<<8 | 'y'
	ScriptInherited             Script = 'Z'<<24 | 'i'<<16 | 'n'<<8 | 'h'
	ScriptUnknown               Script = 'Z'<<24 | 'z'<<16 | 'z'<<8 | 'z'
	ScriptArabic                Script = 'A'<<24 | 'r'<<16 | 'a'<<8 | 'b'
	ScriptArmenian              Script = 'A'<<24 | 'r'<<16 | 'm'<<8 | 'n'
	ScriptBengali               Script = 'B'<<24 | 'e'<<16 | 'n'<<8 | 'g'
	ScriptCyrillic              Script = 'C'<<24 | 'y'<<16 | 'r'<<8 | 'l'
	ScriptDevanagari            Script = 'D'<<24 | 'e'<<16 | 'v'<<8 | 'a'
	ScriptGeorgian              Script = 'G'<<24 | 'e'<<16 | 'o'<<8 | 'r'
	ScriptGreek                 Script = 'G'<<24 | 'r'<<16 | 'e'<<8 | 'k'
	ScriptGujarati              Script = 'G'<<24 | 'u'<<16 | 'j'<<8 | 'r'
	ScriptGurmukhi              Script = 'G'<<24 | 'u'<<16 | 'r'<<8 | 'u'
	ScriptHangul                Script = 'H'<<24 | 'a'<<16 | 'n'<<8 | 'g'
	ScriptHan                   Script = 'H'<<24 | 'a'<<16 | 'n'<<8 | 'i'
	ScriptHebrew                Script = 'H'<<24 | 'e'<<16 | 'b'<<8 | 'r'
	ScriptHiragana              Script = 'H'<<24 | 'i'<<16 | 'r'<<8 | 'a'
	ScriptKannada               Script = 'K'<<24 | 'n'<<16 | 'd'<<8 | 'a'
	ScriptKatakana              Script = 'K'<<24 | 'a'<<16 | 'n'<<8 | 'a'
	ScriptLao                   Script = 'L'<<24 | 'a'<<16 | 'o'<<8 | 'o'
	ScriptLatin                 Script = 'L'<<24 | 'a'<<16 | 't'<<8 | 'n'
	ScriptMalayalam             Script = 'M'<<24 | 'l'<<16 | 'y'<<8 | 'm'
	ScriptOriya                 Script = 'O'<<24 | 'r'<<16 | 'y'<<8 | 'a'
	ScriptTamil                 Script = 'T'<<24 | 'a'<<16 | 'm'<<8 | 'l'
	ScriptTelugu                Script = 'T'<<24 | 'e'<<16 | 'l'<<8 | 'u'
	ScriptThai                  Script = 'T'<<24 | 'h'<<16 | 'a'<<8 | 'i'
	ScriptTibetan               Script = 'T'<<24 | 'i'<<16 | 'b'<<8 | 't'
	ScriptBopomofo              Script = 'B'<<24 | 'o'<<16 | 'p'<<8 | 'o'
	ScriptBraille               Script = 'B'<<24 | 'r'<<16 | 'a'<<8 | 'i'
	ScriptCanadianSyllabics     Script = 'C'<<24 | 'a'<<16 | 'n'<<8 | 's'
	ScriptCherokee              Script = 'C'<<24 | 'h'<<16 | 'e'<<8 | 'r'
	ScriptEthiopic              Script = 'E'<<24 | 't'<<16 | 'h'<<8 | 'i'
	ScriptKhmer                 Script = 'K'<<24 | 'h'<<16 | 'm'<<8 | 'r'
	ScriptMongolian             Script = 'M'<<24 | 'o'<<16 | 'n'<<8 | 'g'
	ScriptMyanmar               Script = 'M'<<24 | 'y'<<16 | 'm'<<8 | 'r'
	ScriptOgham                 Script = 'O'<<24 | 'g'<<16 | 'a'<<8 | 'm'
	ScriptRunic                 Script = 'R'<<24 | 'u'<<16 | 'n'<<8 | 'r'
	ScriptSinhala               Script = 'S'<<24 | 'i'<<16 | 'n'<<8 | 'h'
	ScriptSyriac                Script = 'S'<<24 | 'y'<<16 | 'r'<<8 | 'c'
	ScriptThaana                Script = 'T'<<24 | 'h'<<16 | 'a'<<8 | 'a'
	ScriptYi                    Script = 'Y'<<24 | 'i'<<16 | 'i'<<8 | 'i'
	ScriptDeseret               Script = 'D'<<24 | 's'<<16 | 'r'<<8 | 't'
	ScriptGothic                Script = 'G'<<24 | 'o'<<16 | 't'<<8 | 'h'
	ScriptOldItalic             Script = 'I'<<24 | 't'<<16 | 'a'<<8 | 'l'
	ScriptBuhid                 Script = 'B'<<24 | 'u'<<16 | 'h'<<8 | 'd'
	ScriptHanunoo               Script = 'H'<<24 | 'a'<<16 | 'n'<<8 | 'o'
	ScriptTagalog               Script = 'T'<<24 | 'g'<<16 | 'l'<<8 | 'g'
	ScriptTagbanwa              Script = 'T'<<24 | 'a'<<16 | 'g'<<8 | 'b'
	ScriptCypriot               Script = 'C'<<24 | 'p'<<16 | 'r'<<8 | 't'
	ScriptLimbu                 Script = 'L'<<24 | 'i'<<16 | 'm'<<8 | 'b'
	ScriptLinearB               Script = 'L'<<24 | 'i'<<16 | 'n'<<8 | 'b'
	ScriptOsmanya               Script = 'O'<<24 | 's'<<16 | 'm'<<8 | 'a'
	ScriptShavian               Script = 'S'<<24 | 'h'<<16 | 'a'<<8 | 'w'
	ScriptTaiLe                 Script = 'T'<<24 | 'a'<<16 | 'l'<<8 | 'e'
	ScriptUgaritic              Script = 'U'<<24 | 'g'<<16 | 'a'<<8 | 'r'
	ScriptBuginese              Script = 'B'<<24 | 'u'<<16 | 'g'<<8 | 'i'
	ScriptCoptic                Script = 'C'<<24 | 'o'<<16 | 'p'<<8 | 't'
	ScriptGlagolitic            Script = 'G'<<24 | 'l'<<16 | 'a'<<8 | 'g'
	ScriptKharoshthi            Script = 'K'<<24 | 'h'<<16 | 'a'<<8 | 'r'
	ScriptNewTaiLue             Script = 'T'<<24 | 'a'<<16 | 'l'<<8 | 'u'
	ScriptOldPersian            Script = 'X'<<24 | 'p'<<16 | 'e'<<8 | 'o'
	ScriptSylotiNagri           Script = 'S'<<24 | 'y'<<16 | 'l'<<8 | 'o'
	ScriptTifinagh              Script = 'T'<<24 | 'f'<<16 | 'n'<<8 | 'g'
	ScriptBalinese              Script = 'B'<<24 | 'a'<<16 | 'l'<<8 | 'i'
	ScriptCuneiform             Script = 'X'<<24 | 's'<<16 | 'u'<<8 | 'x'
	ScriptNko                   Script = 'N'<<24 | 'k'<<16 | 'o'<<8 | 'o'
	ScriptPhagsPa               Script = 'P'<<24 | 'h'<<16 | 'a'<<8 | 'g'
	ScriptPhoenician            Script = 'P'<<24 | 'h'<<16 | 'n'<<8 | 'x'
	ScriptCarian                Script = 'C'<<24 | 'a'<<16 | 'r'<<8 | 'i'
	ScriptCham                  Script = 'C'<<24 | 'h'<<16 | 'a'<<8 | 'm'
	ScriptKayahLi               Script = 'K'<<24 | 'a'<<16 | 'l'<<8 | 'i'
	ScriptLepcha                Script = 'L'<<24 | 'e'<<16 | 'p'<<8 | 'c'
	ScriptLycian                Script = 'L'<<24 | 'y'<<16 | 'c'<<8 | 'i'
	ScriptLydian                Script = 'L'<<24 | 'y'<<16 | 'd'<<8 | 'i'
	ScriptOlChiki               Script = 'O'<<24 | 'l'<<16 | 'c'<<8 | 'k'
	ScriptRejang                Script = 'R'<<24 | 'j'<<16 | 'n'<<8 | 'g'
	ScriptSaurashtra            Script = 'S'<<24 | 'a'<<16 | 'u'<<8 | 'r'
	ScriptSundanese             Script = 'S'<<24 | 'u'<<16 | 'n'<<8 | 'd'
	ScriptVai                   Script = 'V'<<24 | 'a'<<16 | 'i'<<8 | 'i'
	ScriptAvestan               Script = 'A'<<24 | 'v'<<16 | 's'<<8 | 't'
	ScriptBamum                 Script = 'B'<<24 | 'a'<<16 | 'm'<<8 | 'u'
	ScriptEgyptianHieroglyphs   Script = 'E'<<24 | 'g'<<16 | 'y'<<8 | 'p'
	ScriptImperialAramaic       Script = 'A'<<24 | 'r'<<16 | 'm'<<8 | 'i'
	ScriptInscriptionalPahlavi  Script = 'P'<<24 | 'h'<<16 | 'l'<<8 | 'i'
	ScriptInscriptionalParthian Script = 'P'<<24 | 'r'<<16 | 't'<<8 | 'i'
	ScriptJavanese              Script = 'J'<<24 | 'a'<<16 | 'v'<<8 | 'a'
	ScriptKaithi                Script = 'K'<<24 | 't'<<16 | 'h'<<8 | 'i'
	ScriptLisu                  Script = 'L'<<24 | 'i'<<16 | 's'<<8 | 'u'
	ScriptMeeteiMayek           Script = 'M'<<24 | 't'<<16 | 'e'<<8 | 'i'
	ScriptOldSouthArabian       Script = 'S'<<24 | 'a'<<16 | 'r'<<8 | 'b'
	ScriptOldTurkic             Script = 'O'<<24 | 'r'<<16 | 'k'<<8 | 'h'
	ScriptSamaritan             Script = 'S'<<24 | 'a'<<16 | 'm'<<8 | 'r'
	ScriptTaiTham               Script = 'L'<<24 | 'a'<<16 | 'n'<<8 | 'a'
	ScriptTaiViet               Script = 'T'<<24 | 'a'<<16 | 'v'<<8 | 't'
	ScriptBatak                 Script = 'B'<<24 | 'a'<<16 | 't'<<8 | 'k'
	ScriptBrahmi                Script = 'B'<<24 | 'r'<<16 | 'a'<<8 | 'h'
	ScriptMandaic               Script = 'M'<<24 | 'a'<<16 | 'n'<<8 | 'd'
	ScriptChakma                Script = 'C'<<24 | 'a'<<16 | 'k'<<8 | 'm'
	ScriptMeroiticCursive       Script = 'M'<<24 | 'e'<<16 | 'r'<<8 | 'c'
	ScriptMeroiticHieroglyphs   Script = 'M'<<24 | 'e'<<16 | 'r'<<8 | 'o'
	ScriptMiao                  Script = 'P'<<24 | 'l'<<16 | 'r'<<8 | 'd'
	ScriptSharada               Script = 'S'<<24 | 'h'<<16 | 'r'<<8 | 'd'
	ScriptSoraSompeng           Script = 'S'<<24 | 'o'<<16 | 'r'<<8 | 'a'
	ScriptTakri                 Script = 'T'<<24 | 'a'<<16 | 'k'<<8 | 'r'
	ScriptBassaVah              Script = 'B'<<24 | 'a'<<16 | 's'<<8 | 's'
	ScriptCaucasianAlbanian     Script = 'A'<<24 | 'g'<<16 | 'h'<<8 | 'b'
	ScriptDuployan              Script = 'D'<<24 | 'u'<<16 | 'p'<<8 | 'l'
	ScriptElbasan               Script = 'E'<<24 | 'l'<<16 | 'b'<<8 | 'a'
	ScriptGrantha               Script = 'G'<<24 | 'r'<<16 | 'a'<<8 | 'n'
	ScriptKhojki                Script = 'K'<<24 | 'h'<<16 | 'o'<<8 | 'j'
	ScriptKhudawadi             Script = 'S'<<24 | 'i'<<16 | 'n'<<8 | 'd'
	ScriptLinearA               Script = 'L'<<24 | 'i'<<16 | 'n'<<8 | 'a'
	ScriptMahajani              Script = 'M'<<24 | 'a'<<16 | 'h'<<8 | 'j'
	ScriptManichaean            Script = 'M'<<24 | 'a'<<16 | 'n'<<8 | 'i'
	ScriptMendeKikakui          Script = 'M'<<24 | 'e'<<16 | 'n'<<8 | 'd'
	ScriptModi                  Script = 'M'<<24 | 'o'<<16 | 'd'<<8 | 'i'
	ScriptMro                   Script = 'M'<<24 | 'r'<<16 | 'o'<<8 | 'o'
	ScriptNabataean             Script = 'N'<<24 | 'b'<<16 | 'a'<<8 | 't'
	ScriptOldNorthArabian       Script = 'N'<<24 | 'a'<<16 | 'r'<<8 | 'b'
	ScriptOldPermic             Script = 'P'<<24 | 'e'<<16 | 'r'<<8 | 'm'
	ScriptPahawhHmong           Script = 'H'<<24 | 'm'<<16 | 'n'<<8 | 'g'
	ScriptPalmyrene             Script = 'P'<<24 | 'a'<<16 | 'l'<<8 | 'm'
	ScriptPauCinHau             Script = 'P'<<24 | 'a'<<16 | 'u'<<8 | 'c'
	ScriptPsalterPahlavi        Script = 'P'<<24 | 'h'<<16 | 'l'<<8 | 'p'
	ScriptSiddham               Script = 'S'<<24 | 'i'<<16 | 'd'<<8 | 'd'
	ScriptTirhuta               Script = 'T'<<24 | 'i'<<16 | 'r'<<8 | 'h'
	ScriptWarangCiti            Script = 'W'<<24 | 'a'<<16 | 'r'<<8 | 'a'
	ScriptAhom                  Script = 'A'<<24 | 'h'<<16 | 'o'<<8 | 'm'
	ScriptAnatolianHieroglyphs  Script = 'H'<<24 | 'l'<<16 | 'u'<<8 | 'w'
	ScriptHatran                Script = 'H'<<24 | 'a'<<16 | 't'<<8 | 'r'
	ScriptMultani               Script = 'M'<<24 | 'u'<<16 | 'l'<<8 | 't'
	ScriptOldHungarian          Script = 'H'<<24 | 'u'<<16 | 'n'<<8 | 'g'
	ScriptSignwriting           Script = 'S'<<24 | 'g'<<16 | 'n'<<8 | 'w'
	ScriptAdlam                 Script = 'A'<<24 | 'd'<<16 | 'l'<<8 | 'm'
	ScriptBhaiksuki             Script = 'B'<<24 | 'h'<<16 | 'k'<<8 | 's'
	ScriptMarchen               Script = 'M'<<24 | 'a'<<16 | 'r'<<8 | 'c'
	ScriptOsage                 Script = 'O'<<24 | 's'<<16 | 'g'<<8 | 'e'
	ScriptTangut                Script = 'T'<<24 | 'a'<<16 | 'n'<<8 | 'g'
	ScriptNewa                  Script = 'N'<<24 | 'e'<<16 | 'w'<<8 | 'a'
	ScriptMasaramGondi          Script = 'G'<<24 | 'o'<<16 | 'n'<<8 | 'm'
	ScriptNushu                 Script = 'N'<<24 | 's'<<16 | 'h'<<8 | 'u'
	ScriptSoyombo               Script = 'S'<<24 | 'o'<<16 | 'y'<<8 | 'o'
	ScriptZanabazarSquare       Script = 'Z'<<24 | 'a'<<16 | 'n'<<8 | 'b'
	ScriptDogra                 Script = 'D'<<24 | 'o'<<16 | 'g'<<8 | 'r'
	ScriptGunjalaGondi          Script = 'G'<<24 | 'o'<<16 | 'n'<<8 | 'g'
	ScriptHanifiRohingya        Script = 'R'<<24 | 'o'<<16 | 'h'<<8 | 'g'
	ScriptMakasar               Script = 'M'<<24 | 'a'<<16 | 'k'<<8 | 'a'
	ScriptMedefaidrin           Script = 'M'<<24 | 'e'<<16 | 'd'<<8 | 'f'
	ScriptOldSogdian            Script = 'S'<<24 | 'o'<<16 | 'g'<<8 | 'o'
	ScriptSogdian               Script = 'S'<<24 | 'o'<<16 | 'g'<<8 | 'd'
	ScriptElymaic               Script = 'E'<<24 | 'l'<<16 | 'y'<<8 | 'm'
	ScriptNandinagari           Script = 'N'<<24 | 'a'<<16 | 'n'<<8 | 'd'
	ScriptNyiakengPuachueHmong  Script = 'H'<<24 | 'm'<<16 | 'n'<<8 | 'p'
	ScriptWancho                Script = 'W'<<24 | 'c'<<16 | 'h'<<8 | 'o'
	ScriptChorasmian            Script = 'C'<<24 | 'h'<<16 | 'r'<<8 | 's'
	ScriptDivesAkuru            Script = 'D'<<24 | 'i'<<16 | 'a'<<8 | 'k'
	ScriptKhitanSmallScript     Script = 'K'<<24 | 'i'<<16 | 't'<<8 | 's'
	ScriptYezidi                Script = 'Y'<<24 | 'e'<<16 | 'z'<<8 | 'i'
	ScriptCyproMinoan           Script = 'C'<<24 | 'p'<<16 | 'm'<<8 | 'n'
	ScriptOldUyghur             Script = 'O'<<24 | 'u'<<16 | 'g'<<8 | 'r'
	ScriptTangsa                Script = 'T'<<24 | 'n'<<16 | 's'<<8 | 'a'
	ScriptToto                  Script = 'T'<<24 | 'o'<<16 | 't'<<8 | 'o'
	ScriptVithkuqi              Script = 'V'<<24 | 'i'<<16 | 't'<<8 | 'h'
	ScriptMath                  Script = 'Z'<<24 | 'm'<<16 | 't'<<8 | 'h'
	ScriptKawi                  Script = 'K'<<24 | 'a'<<16 | 'w'<<8 | 'i'
	ScriptNagMundari            Script = 'N'<<24 | 'a'<<16 | 'g'<<8 | 'm'
)

// ParseScript returns the script for an ISO 15924 code such as "Latn" or an OpenType script tag
// such as "latn". Unknown codes return ScriptUnknown, an empty string returns ScriptInvalid.
func ParseScript(s string) Script {
	if s == "" {
		return ScriptInvalid
	}
	cs, n := cString(s)
	defer freeCString(cs)
	return Script(C.hb_script_from_string(cs, n))
}

// ScriptFromISO15924 returns the script for a packed ISO 15924 tag.
func ScriptFromISO15924(tag Tag) Script {
	return Script(C.hb_script_from_iso15924_tag(C.hb_tag_t(tag)))
}

// ScriptFromLanguage converts a script of golang.org/x/text/language.
func ScriptFromLanguage(s language.Script) Script {
	return ParseScript(s.String())
}

// ISO15924 returns the packed ISO 15924 tag of the script.
func (s Script) ISO15924() Tag {
	return Tag(C.hb_script_to_iso15924_tag(C.hb_script_t(s)))
}

// Language returns the script as used by golang.org/x/text/language.
func (s Script) Language() (language.Script, error) {
	return language.ParseScript(s.ISO15924().String())
}

// HorizontalDirection returns the direction of the script when set horizontally. Scripts that can be
// written in either direction return DirectionInvalid.
func (s Script) HorizontalDirection() Direction {
	return Direction(C.hb_script_get_horizontal_direction(C.hb_script_t(s)))
}

func (s Script) String() string {
	if s == ScriptInvalid {
		return ""
	}
	return Tag(s).String()
}
