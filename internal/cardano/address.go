// Package cardano derives wallet identities from Shelley bech32 addresses and
// builds addresses back from key hashes.
//
// Only base addresses whose payment and stake credentials are both key
// hashes identify a wallet owner: contract datums record the owner's payment
// key hash and stake key hash, and both are needed to match them.
package cardano

import (
	"errors"
	"fmt"

	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"

	"github.com/Salvionied/apollo/crypto/bech32"
	"github.com/Salvionied/apollo/serialization/Address"
)

var (
	// ErrMalformedAddress is returned when the bech32 string cannot be decoded.
	ErrMalformedAddress = errors.New("malformed address")

	// ErrUnsupportedAddressFormat is returned for valid addresses other than a
	// base address with key hash credentials.
	ErrUnsupportedAddressFormat = errors.New("unsupported address format")

	// ErrInvalidKeyHash is returned when a key hash is not 28 bytes of hex.
	ErrInvalidKeyHash = errors.New("invalid key hash")
)

// Shelley address header types (upper nibble of the header byte).
const (
	typeKeyKey        byte = 0b0000
	typeScriptKey     byte = 0b0001
	typeKeyScript     byte = 0b0010
	typeScriptScript  byte = 0b0011
	typeKeyPointer    byte = 0b0100
	typeScriptPointer byte = 0b0101
	typeKeyNone       byte = 0b0110
	typeScriptNone    byte = 0b0111
	typeRewardKey     byte = 0b1110
	typeRewardScript  byte = 0b1111
)

// keyHashLen is the size of a Blake2b-224 credential hash.
const keyHashLen = 28

// Network identifies the chain an address belongs to.
type Network byte

const (
	Testnet Network = 0
	Mainnet Network = 1
)

// ParseNetwork maps "mainnet"/"testnet" (and "preprod"/"preview") to a Network.
func ParseNetwork(s string) (Network, error) {
	switch s {
	case "mainnet":
		return Mainnet, nil
	case "testnet", "preprod", "preview":
		return Testnet, nil
	default:
		return 0, fmt.Errorf("unknown network %q", s)
	}
}

func (n Network) addressHrp() string {
	if n == Mainnet {
		return "addr"
	}
	return "addr_test"
}

func (n Network) stakeHrp() string {
	if n == Mainnet {
		return "stake"
	}
	return "stake_test"
}

// Identity is the pair of key hashes that identifies a wallet owner.
type Identity struct {
	PaymentKeyHash types.Hex `json:"payment_key_hash"`
	StakeKeyHash   types.Hex `json:"stake_key_hash"`
}

// addressKind names a header type for error messages.
func addressKind(typ byte) string {
	switch typ {
	case typeKeyKey:
		return "base"
	case typeScriptKey, typeKeyScript, typeScriptScript:
		return "script base"
	case typeKeyPointer, typeScriptPointer:
		return "pointer"
	case typeKeyNone, typeScriptNone:
		return "enterprise"
	case typeRewardKey, typeRewardScript:
		return "reward"
	default:
		return "byron"
	}
}

// payloadLen returns the size of the credentials that follow the header byte.
// Pointer addresses carry a variable-length pointer after the payment hash,
// so only their minimum size is known.
func payloadLen(typ byte) (n int, exact bool, ok bool) {
	switch typ {
	case typeKeyKey, typeScriptKey, typeKeyScript, typeScriptScript:
		return 2 * keyHashLen, true, true
	case typeKeyPointer, typeScriptPointer:
		return keyHashLen, false, true
	case typeKeyNone, typeScriptNone, typeRewardKey, typeRewardScript:
		return keyHashLen, true, true
	default:
		return 0, false, false
	}
}

// checkPayload verifies that the bech32 payload is long enough for its header
// type. Address.DecodeAddress slices the payload without bounds checks.
func checkPayload(address string) error {
	_, data, err := bech32.Decode(address)
	if err != nil {
		return err
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return errors.New("empty payload")
	}

	typ := raw[0] >> 4
	want, exact, ok := payloadLen(typ)
	if !ok {
		return fmt.Errorf("unknown header type %04b", typ)
	}

	got := len(raw) - 1
	if got < want || (exact && got != want) {
		return fmt.Errorf("%s address with a %d byte payload, want %d", addressKind(typ), got, want)
	}

	return nil
}

func decode(address string) (Address.Address, error) {
	if err := checkPayload(address); err != nil {
		return Address.Address{}, fmt.Errorf("%w: %w", ErrMalformedAddress, err)
	}

	addr, err := Address.DecodeAddress(address)
	if err != nil {
		return Address.Address{}, fmt.Errorf("%w: %w", ErrMalformedAddress, err)
	}
	return addr, nil
}

// DeriveIdentity returns the payment and stake key hashes of a base address.
//
// It fails with ErrMalformedAddress when the string is not a decodable
// address and with ErrUnsupportedAddressFormat for every other address shape
// (script credentials, enterprise, pointer or reward addresses).
func DeriveIdentity(address string) (Identity, error) {
	addr, err := decode(address)
	if err != nil {
		return Identity{}, err
	}

	typ := addr.HeaderByte >> 4
	if typ != typeKeyKey || addr.AddressType != typeKeyKey ||
		len(addr.PaymentPart) != keyHashLen || len(addr.StakingPart) != keyHashLen {
		return Identity{}, fmt.Errorf("%w: %s address", ErrUnsupportedAddressFormat, addressKind(typ))
	}

	return Identity{
		PaymentKeyHash: types.HexFromBytes(addr.PaymentPart),
		StakeKeyHash:   types.HexFromBytes(addr.StakingPart),
	}, nil
}

// StakeAddress returns the reward address (stake1...) sharing the stake
// credential of a base address. Key and script stake credentials are both
// supported; any other address shape fails with ErrUnsupportedAddressFormat.
func StakeAddress(address string) (string, error) {
	addr, err := decode(address)
	if err != nil {
		return "", err
	}

	var rewardType byte
	switch addr.HeaderByte >> 4 {
	case typeKeyKey, typeScriptKey:
		rewardType = typeRewardKey
	case typeKeyScript, typeScriptScript:
		rewardType = typeRewardScript
	default:
		return "", fmt.Errorf("%w: %s address has no stake credential", ErrUnsupportedAddressFormat, addressKind(addr.HeaderByte>>4))
	}

	if len(addr.StakingPart) != keyHashLen {
		return "", fmt.Errorf("%w: stake credential of %d bytes", ErrMalformedAddress, len(addr.StakingPart))
	}

	network := Network(addr.HeaderByte & 0x0F)
	return encode(rewardType, network, nil, addr.StakingPart), nil
}

// StakeAddressFromKeyHash renders a stake key hash as a reward address.
func StakeAddressFromKeyHash(stakeKeyHash types.Hex, network Network) (string, error) {
	stake, err := keyHashBytes(stakeKeyHash)
	if err != nil {
		return "", err
	}

	return encode(typeRewardKey, network, nil, stake), nil
}

// AddressFromKeyHashes builds a base address from a payment and a stake key
// hash, or an enterprise address when stakeKeyHash is empty.
func AddressFromKeyHashes(network Network, paymentKeyHash, stakeKeyHash types.Hex) (string, error) {
	payment, err := keyHashBytes(paymentKeyHash)
	if err != nil {
		return "", err
	}

	if stakeKeyHash.IsEmpty() {
		return encode(typeKeyNone, network, payment, nil), nil
	}

	stake, err := keyHashBytes(stakeKeyHash)
	if err != nil {
		return "", err
	}

	return encode(typeKeyKey, network, payment, stake), nil
}

func keyHashBytes(h types.Hex) ([]byte, error) {
	b := h.Bytes()
	if len(b) != keyHashLen {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKeyHash, h)
	}
	return b, nil
}

func encode(typ byte, network Network, payment, staking []byte) string {
	hrp := network.addressHrp()
	if typ == typeRewardKey || typ == typeRewardScript {
		hrp = network.stakeHrp()
	}

	addr := Address.Address{
		PaymentPart: payment,
		StakingPart: staking,
		Network:     byte(network),
		AddressType: typ,
		HeaderByte:  typ<<4 | byte(network)&0x0F,
		Hrp:         hrp,
	}

	return addr.String()
}
