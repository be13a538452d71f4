package base64

// encodeStd maps a sextet to its character.
const encodeStd = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

// invalid marks bytes outside of the alphabet in decodeMap.
//
// Every sextet is in [0, 63], so invalid never collides with a
// real value and the OR of any number of valid sextets never
// equals invalid.
const invalid = 0xff

// decodeMap is the inverse of encodeStd. It is indexed by raw
// byte value.
var decodeMap = func() (m [256]byte) {
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(encodeStd); i++ {
		m[encodeStd[i]] = byte(i)
	}
	return m
}()

// text is the set of types the codec reads from.
type text interface {
	~string | ~[]byte
}
