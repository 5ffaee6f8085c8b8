// Package paramsql compiles "name=value" parameter text into a T-SQL
// variable declaration block.
//
// Each input line of the form name=value becomes one declared variable. The
// value's type is inferred (see [paramreader.Infer]) and mapped to a SQL
// type:
//
//	id=123                 @id BIGINT = 123
//	price=12.5             @price DECIMAL(16, 5) = 12.5
//	active=True            @active BIT = 1
//	name=bob               @name NVARCHAR(MAX) = N'bob'
//	ids=( 1,a 2,b )[dbo.T] @ids [dbo.T] + INSERT INTO @ids VALUES (1,a), (2,b)
//
// Table-typed parameters are populated with INSERT statements batched by
// [DefaultChunkSize] rows. String values are substituted verbatim; embedded
// quotes are not escaped.
//
// The primary entry point is [Compile]. It is a pure function and safe for
// concurrent use.
package paramsql
