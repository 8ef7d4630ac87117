package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the core domain types. Written by hand in the shape the
// mus-format generator emits, so the storage layer can treat them uniformly.
var (
	IDMUS       = idMUS{}
	DocumentMUS = documentMUS{}

	keywordsMUS = ord.NewSliceSer[string](ord.String)
	timestampMUS = timeMUS{}
)

type idMUS struct{}

var _ mus.Serializer[ID] = idMUS{}

func (idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	raw, n, err := varint.Uint64.Unmarshal(bs)
	return ID(raw), n, err
}

func (idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// timeMUS encodes a timestamp as a zero flag plus Unix microseconds, so the
// zero time survives a round trip exactly.
type timeMUS struct{}

var _ mus.Serializer[time.Time] = timeMUS{}

func (timeMUS) Marshal(v time.Time, bs []byte) (n int) {
	zero := v.IsZero()
	n = ord.Bool.Marshal(zero, bs)
	if zero {
		return n
	}
	return n + varint.Int64.Marshal(v.UnixMicro(), bs[n:])
}

func (timeMUS) Unmarshal(bs []byte) (v time.Time, n int, err error) {
	zero, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || zero {
		return time.Time{}, n, err
	}
	micros, n1, err := varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micros).UTC(), n, nil
}

func (timeMUS) Size(v time.Time) (size int) {
	if v.IsZero() {
		return ord.Bool.Size(true)
	}
	return ord.Bool.Size(false) + varint.Int64.Size(v.UnixMicro())
}

func (timeMUS) Skip(bs []byte) (n int, err error) {
	zero, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || zero {
		return n, err
	}
	n1, err := varint.Int64.Skip(bs[n:])
	return n + n1, err
}

type documentMUS struct{}

var _ mus.Serializer[Document] = documentMUS{}

func (documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Owner, bs[n:])
	n += ord.String.Marshal(v.Company, bs[n:])
	n += ord.String.Marshal(v.Type, bs[n:])
	n += ord.String.Marshal(v.Country, bs[n:])
	n += keywordsMUS.Marshal(v.Keywords, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += ord.String.Marshal(v.TextContent, bs[n:])
	n += ord.String.Marshal(v.FileName, bs[n:])
	n += timestampMUS.Marshal(v.Expiry, bs[n:])
	n += timestampMUS.Marshal(v.UploadedAt, bs[n:])
	n += timestampMUS.Marshal(v.InsertedAt, bs[n:])
	n += timestampMUS.Marshal(v.UpdatedAt, bs[n:])
	n += ord.Bool.Marshal(v.IsProcessing, bs[n:])
	return n
}

func (documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	var n1 int
	if v.Id, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Owner, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Company, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Type, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Country, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Keywords, n1, err = keywordsMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Summary, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.TextContent, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.FileName, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Expiry, n1, err = timestampMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.UploadedAt, n1, err = timestampMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.InsertedAt, n1, err = timestampMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.UpdatedAt, n1, err = timestampMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.IsProcessing, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	return v, n, nil
}

func (documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Owner)
	size += ord.String.Size(v.Company)
	size += ord.String.Size(v.Type)
	size += ord.String.Size(v.Country)
	size += keywordsMUS.Size(v.Keywords)
	size += ord.String.Size(v.Summary)
	size += ord.String.Size(v.TextContent)
	size += ord.String.Size(v.FileName)
	size += timestampMUS.Size(v.Expiry)
	size += timestampMUS.Size(v.UploadedAt)
	size += timestampMUS.Size(v.InsertedAt)
	size += timestampMUS.Size(v.UpdatedAt)
	size += ord.Bool.Size(v.IsProcessing)
	return size
}

func (documentMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	skippers := []func([]byte) (int, error){
		IDMUS.Skip,
		ord.String.Skip,
		ord.String.Skip,
		ord.String.Skip,
		ord.String.Skip,
		keywordsMUS.Skip,
		ord.String.Skip,
		ord.String.Skip,
		ord.String.Skip,
		timestampMUS.Skip,
		timestampMUS.Skip,
		timestampMUS.Skip,
		timestampMUS.Skip,
		ord.Bool.Skip,
	}
	for _, skip := range skippers {
		if n1, err = skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}
