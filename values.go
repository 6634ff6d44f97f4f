package fixwire

import "fmt"

// BeginString is the closed enumeration of supported protocol versions.
// The codec speaks exactly one.
type BeginString uint8

const (
	// BeginStringFIX44 is FIX protocol version 4.4.
	BeginStringFIX44 BeginString = iota
)

// beginStringFIX44 is the wire form of the supported version marker.
var beginStringFIX44 = []byte("FIX.4.4")

// ParseBeginString converts version-marker bytes into a BeginString.
// Anything other than the single supported version fails.
func ParseBeginString(b []byte) (BeginString, error) {
	if string(b) == string(beginStringFIX44) {
		return BeginStringFIX44, nil
	}
	return 0, fmt.Errorf("fixwire: unsupported begin string %q", b)
}

// Bytes returns the wire form of the version marker.
func (s BeginString) Bytes() []byte {
	return beginStringFIX44
}

func (s BeginString) String() string {
	return string(s.Bytes())
}

// MsgType is the closed enumeration of administrative message type codes.
// The underlying value is the single-character wire code.
type MsgType byte

const (
	MsgTypeHeartbeat     MsgType = '0'
	MsgTypeTestRequest   MsgType = '1'
	MsgTypeResendRequest MsgType = '2'
	MsgTypeReject        MsgType = '3'
	MsgTypeSequenceReset MsgType = '4'
	MsgTypeLogout        MsgType = '5'
	MsgTypeLogon         MsgType = 'A'
)

// ParseMsgType converts message-type bytes into a MsgType. Only the seven
// single-character administrative codes are recognized.
func ParseMsgType(b []byte) (MsgType, error) {
	if len(b) == 1 {
		switch t := MsgType(b[0]); t {
		case MsgTypeHeartbeat, MsgTypeTestRequest, MsgTypeResendRequest,
			MsgTypeReject, MsgTypeSequenceReset, MsgTypeLogout, MsgTypeLogon:
			return t, nil
		}
	}
	return 0, fmt.Errorf("fixwire: unsupported msg type %q", b)
}

// Bytes returns the wire form of the message type code.
func (t MsgType) Bytes() []byte {
	return []byte{byte(t)}
}

func (t MsgType) String() string {
	switch t {
	case MsgTypeHeartbeat:
		return "Heartbeat"
	case MsgTypeTestRequest:
		return "TestRequest"
	case MsgTypeResendRequest:
		return "ResendRequest"
	case MsgTypeReject:
		return "Reject"
	case MsgTypeSequenceReset:
		return "SequenceReset"
	case MsgTypeLogout:
		return "Logout"
	case MsgTypeLogon:
		return "Logon"
	}
	return fmt.Sprintf("MsgType(%q)", byte(t))
}
