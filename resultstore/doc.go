/*
Package resultstore contains a toolkit for building fast, write-once
read-only stores of intersection points keyed by their planar
coordinates. It is a point-keyed descendant of a cell-ID-keyed
proximity index: the block/section/footer layout survives unchanged,
but the key type is a geom.Point instead of an s2.CellID.

Data Structure Documentation

Store

A store contains a series of data blocks followed by an index and
a store footer.

    Store layout:
    +---------+---------+---------+-------------+--------------+
    | block 1 |   ...   | block n | block index | store footer |
    +---------+---------+---------+-------------+--------------+

    Block index:
    +--------------------------------+---------------------+---------------------------------------+---------------------------+--------+
    | last point block 1 (2 varint)  |  offset 1 (varint)  | last point block 2 (2 varint, delta)  |  offset 2 (varint, delta) |   ...  |
    +--------------------------------+---------------------+---------------------------------------+---------------------------+--------+

    Store footer:
    +------------------------+------------------+
    | index offset (8 bytes) |  magic (8 bytes) |
    +------------------------+------------------+

Block

A block comprises of a series of sections, followed by a section
index and a single-byte compression type indicator.

    Block layout:
    +-----------+---------+-----------+---------------+---------------------------+
    | section 1 |   ...   | section n | section index | compression type (1-byte) |
    +-----------+---------+-----------+---------------+---------------------------+

    Section index:
    +----------------------------+-------+----------------------------+-------------------------------+
    | section offset 1 (4 bytes) |  ...  | section offset n (4 bytes) |  number of sections (4 bytes) |
    +----------------------------+-------+----------------------------+-------------------------------+

Section

A section is a series of point-value pairs (= entries). The X
coordinate of the first entry in a section is stored as an absolute
ordered varint, while the X coordinates of subsequent entries are
delta encoded against the previous entry's X. The Y coordinate is
always stored as an absolute ordered varint, since points sharing an
X are not monotonic in Y across a whole block.

    +----------------+----------------+-----------------------+-------------------+---------------------------+----------------+-----------------------+-------------------+-------+
    | x 1 (varint)   | y 1 (varint)   | value len 1 (varint)  | value 1 (varlen)  | x 2 (varint, delta from 1) | y 2 (varint) | value len 2 (varint)  | value 2 (varlen)  |  ...  |
    +----------------+----------------+-----------------------+-------------------+---------------------------+----------------+-----------------------+-------------------+-------+

Ordered varints

Coordinates are float64s, which do not sort correctly as raw IEEE 754
bit patterns once negative numbers are involved. Each coordinate is
first mapped through orderKey, a bijection to uint64 that preserves
the coordinate's numeric ordering, before being varint-encoded.
*/
package resultstore
