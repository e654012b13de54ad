package errs

import "fmt"

type InvalidSymbol struct {
	ValidationErrorImpl
	message string
}

func NewInvalidSymbol(message string) *InvalidSymbol {
	return &InvalidSymbol{message: message}
}

func (a InvalidSymbol) Error() string {
	return a.message
}

func (a InvalidSymbol) Extend(message string) error {
	return NewInvalidSymbol(fmtExtend(a, message))
}

func (a InvalidSymbol) Is(target error) bool {
	_, ok := target.(InvalidSymbol)
	return ok
}

type InvalidAmount struct {
	ValidationErrorImpl
	message string
}

func NewInvalidAmount(message string) *InvalidAmount {
	return &InvalidAmount{message: message}
}

func (a InvalidAmount) Error() string {
	return a.message
}

func (a InvalidAmount) Extend(message string) error {
	return NewInvalidAmount(fmtExtend(a, message))
}

func (a InvalidAmount) Is(target error) bool {
	_, ok := target.(InvalidAmount)
	return ok
}

type SymbolMismatch struct {
	ValidationErrorImpl
	message string
}

func NewSymbolMismatch(message string) *SymbolMismatch {
	return &SymbolMismatch{message: message}
}

func (a SymbolMismatch) Error() string {
	return a.message
}

func (a SymbolMismatch) Extend(message string) error {
	return NewSymbolMismatch(fmtExtend(a, message))
}

func (a SymbolMismatch) Is(target error) bool {
	_, ok := target.(SymbolMismatch)
	return ok
}

type Overflow struct {
	ValidationErrorImpl
	message string
}

func NewOverflow(message string) *Overflow {
	return &Overflow{message: message}
}

func (a Overflow) Error() string {
	return a.message
}

func (a Overflow) Extend(message string) error {
	return NewOverflow(fmtExtend(a, message))
}

func (a Overflow) Is(target error) bool {
	_, ok := target.(Overflow)
	return ok
}

type Underflow struct {
	ValidationErrorImpl
	message string
}

func NewUnderflow(message string) *Underflow {
	return &Underflow{message: message}
}

func (a Underflow) Error() string {
	return a.message
}

func (a Underflow) Extend(message string) error {
	return NewUnderflow(fmtExtend(a, message))
}

func (a Underflow) Is(target error) bool {
	_, ok := target.(Underflow)
	return ok
}

type AlreadyExists struct {
	ValidationErrorImpl
	message string
}

func NewAlreadyExists(message string) *AlreadyExists {
	return &AlreadyExists{message: message}
}

func (a AlreadyExists) Error() string {
	return a.message
}

func (a AlreadyExists) Extend(message string) error {
	return NewAlreadyExists(fmtExtend(a, message))
}

func (a AlreadyExists) Is(target error) bool {
	_, ok := target.(AlreadyExists)
	return ok
}

type NotFound struct {
	ValidationErrorImpl
	message string
}

func NewNotFound(message string) *NotFound {
	return &NotFound{message: message}
}

func (a NotFound) Error() string {
	return a.message
}

func (a NotFound) Extend(message string) error {
	return NewNotFound(fmtExtend(a, message))
}

func (a NotFound) Is(target error) bool {
	_, ok := target.(NotFound)
	return ok
}

type Unauthorized struct {
	ValidationErrorImpl
	message string
}

func NewUnauthorized(message string) *Unauthorized {
	return &Unauthorized{message: message}
}

func (a Unauthorized) Error() string {
	return a.message
}

func (a Unauthorized) Extend(message string) error {
	return NewUnauthorized(fmtExtend(a, message))
}

func (a Unauthorized) Is(target error) bool {
	_, ok := target.(Unauthorized)
	return ok
}

type ExceedsMaxSupply struct {
	ValidationErrorImpl
	message string
}

func NewExceedsMaxSupply(message string) *ExceedsMaxSupply {
	return &ExceedsMaxSupply{message: message}
}

func (a ExceedsMaxSupply) Error() string {
	return a.message
}

func (a ExceedsMaxSupply) Extend(message string) error {
	return NewExceedsMaxSupply(fmtExtend(a, message))
}

func (a ExceedsMaxSupply) Is(target error) bool {
	_, ok := target.(ExceedsMaxSupply)
	return ok
}

type InsufficientBalance struct {
	ValidationErrorImpl
	message string
}

func NewInsufficientBalance(message string) *InsufficientBalance {
	return &InsufficientBalance{message: message}
}

func (a InsufficientBalance) Error() string {
	return a.message
}

func (a InsufficientBalance) Extend(message string) error {
	return NewInsufficientBalance(fmtExtend(a, message))
}

func (a InsufficientBalance) Is(target error) bool {
	_, ok := target.(InsufficientBalance)
	return ok
}

type SameAccount struct {
	ValidationErrorImpl
	message string
}

func NewSameAccount(message string) *SameAccount {
	return &SameAccount{message: message}
}

func (a SameAccount) Error() string {
	return a.message
}

func (a SameAccount) Extend(message string) error {
	return NewSameAccount(fmtExtend(a, message))
}

func (a SameAccount) Is(target error) bool {
	_, ok := target.(SameAccount)
	return ok
}

type MemoTooLong struct {
	ValidationErrorImpl
	length int
	limit  int
}

func NewMemoTooLong(length, limit int) *MemoTooLong {
	return &MemoTooLong{length: length, limit: limit}
}

func (a MemoTooLong) Error() string {
	return fmt.Sprintf("memo of %d bytes exceeds the limit of %d", a.length, a.limit)
}

func (a MemoTooLong) Is(target error) bool {
	_, ok := target.(MemoTooLong)
	return ok
}

type BalanceNotZero struct {
	ValidationErrorImpl
	message string
}

func NewBalanceNotZero(message string) *BalanceNotZero {
	return &BalanceNotZero{message: message}
}

func (a BalanceNotZero) Error() string {
	return a.message
}

func (a BalanceNotZero) Extend(message string) error {
	return NewBalanceNotZero(fmtExtend(a, message))
}

func (a BalanceNotZero) Is(target error) bool {
	_, ok := target.(BalanceNotZero)
	return ok
}
