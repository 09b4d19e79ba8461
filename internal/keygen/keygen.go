package keygen

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"outbox/internal/domain"
)

// Identity holds the key pairs of one sample device.
type Identity struct {
	UserID   domain.UserID
	DeviceID domain.DeviceID

	curvePriv [32]byte
	curvePub  [32]byte
	edPriv    ed25519.PrivateKey
	edPub     ed25519.PublicKey
}

// NewIdentity generates a fresh Curve25519 + Ed25519 identity for the given
// user and device. The Curve25519 private key is clamped per RFC 7748.
func NewIdentity(user domain.UserID, device domain.DeviceID) (*Identity, error) {
	id := &Identity{UserID: user, DeviceID: device}

	if _, err := rand.Read(id.curvePriv[:]); err != nil {
		return nil, err
	}
	clamp(&id.curvePriv)
	pub, err := curve25519.X25519(id.curvePriv[:], curve25519.Basepoint)
	if err != nil {
		return nil, err
	}
	copy(id.curvePub[:], pub)

	id.edPub, id.edPriv, err = ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return id, nil
}

// CurveKeyID returns the algorithm-qualified id of the Curve25519 key.
func (id *Identity) CurveKeyID() domain.KeyID {
	return domain.KeyID("curve25519:" + id.DeviceID.String())
}

// EdKeyID returns the algorithm-qualified id of the Ed25519 key.
func (id *Identity) EdKeyID() domain.KeyID {
	return domain.KeyID("ed25519:" + id.DeviceID.String())
}

// DeviceKeys builds the signed device-keys block for this identity.
func (id *Identity) DeviceKeys() (*domain.DeviceKeys, error) {
	keys := &domain.DeviceKeys{
		UserID:   id.UserID,
		DeviceID: id.DeviceID,
		Algorithms: []string{
			"m.olm.v1.curve25519-aes-sha2",
			"m.megolm.v1.aes-sha2",
		},
		Keys: map[domain.KeyID]string{
			id.CurveKeyID(): b64(id.curvePub[:]),
			id.EdKeyID():    b64(id.edPub),
		},
	}
	sig, err := id.signJSON(keys)
	if err != nil {
		return nil, err
	}
	keys.Signatures = map[domain.UserID]map[domain.KeyID]string{
		id.UserID: {id.EdKeyID(): sig},
	}
	return keys, nil
}

// OneTimeKeys generates n signed single-use Curve25519 keys, keyed as
// signed_curve25519:AAAAxx.
func (id *Identity) OneTimeKeys(n int) (map[domain.KeyID]domain.OneTimeKey, error) {
	out := make(map[domain.KeyID]domain.OneTimeKey, n)
	for i := 0; i < n; i++ {
		var priv [32]byte
		if _, err := rand.Read(priv[:]); err != nil {
			return nil, err
		}
		clamp(&priv)
		pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
		if err != nil {
			return nil, err
		}
		Wipe(priv[:])

		otk := domain.OneTimeKey{Key: b64(pub)}
		sig, err := id.signJSON(otk)
		if err != nil {
			return nil, err
		}
		otk.Signatures = map[domain.UserID]map[domain.KeyID]string{
			id.UserID: {id.EdKeyID(): sig},
		}
		out[domain.KeyID(fmt.Sprintf("signed_curve25519:AAAA%02d", i))] = otk
	}
	return out, nil
}

// signJSON signs the JSON serialisation of v (without any signatures
// present) and returns the unpadded base64 signature.
func (id *Identity) signJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return b64(ed25519.Sign(id.edPriv, b)), nil
}

// Verify reports whether sig (unpadded base64) is this identity's Ed25519
// signature over the JSON serialisation of v.
func (id *Identity) Verify(v any, sig string) bool {
	b, err := json.Marshal(v)
	if err != nil {
		return false
	}
	raw, err := base64.RawStdEncoding.DecodeString(sig)
	if err != nil {
		return false
	}
	return ed25519.Verify(id.edPub, b, raw)
}

// Wipe best-effort zeroes a sensitive byte slice.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// b64 returns unpadded standard base64, the wire convention for key material.
func b64(b []byte) string { return base64.RawStdEncoding.EncodeToString(b) }

func clamp(k *[32]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
